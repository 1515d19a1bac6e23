package models

// Rect represents cell coordinate bounds of a range.
type Rect struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Normalize returns r with R1 <= R2 and C1 <= C2.
func (r Rect) Normalize() Rect {
	if r.R1 > r.R2 {
		r.R1, r.R2 = r.R2, r.R1
	}
	if r.C1 > r.C2 {
		r.C1, r.C2 = r.C2, r.C1
	}
	return r
}

// Contains reports whether o lies completely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.R1 >= r.R1 && o.R2 <= r.R2 && o.C1 >= r.C1 && o.C2 <= r.C2
}

// Rows returns the number of rows covered by r.
func (r Rect) Rows() int {
	return r.R2 - r.R1 + 1
}

// Cols returns the number of columns covered by r.
func (r Rect) Cols() int {
	return r.C2 - r.C1 + 1
}
