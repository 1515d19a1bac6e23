package models

// Direction is the direction a fill extends the source range into.
type Direction string

const (
	DirectionRight Direction = "right"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionUp    Direction = "up"
)

// Forward reports whether the direction moves away from the sheet origin.
func (d Direction) Forward() bool {
	return d == DirectionRight || d == DirectionDown
}

// Vertical reports whether the direction fills along columns.
func (d Direction) Vertical() bool {
	return d == DirectionDown || d == DirectionUp
}

// Method names how a line was filled.
type Method string

const (
	// MethodInterval means a repeating pattern was detected.
	MethodInterval Method = "interval"
	// MethodCopy means no pattern was found and the copy fallback ran.
	MethodCopy Method = "copy"
)

// LineReport describes the fill of one row or column.
type LineReport struct {
	// Index is the row (horizontal fills) or column (vertical fills).
	Index int `json:"index"`
	// Method is the strategy that produced the destination cells.
	Method Method `json:"method"`
	// Step is the detected period length (interval fills only).
	Step int `json:"step,omitempty"`
	// Deltas are the per-offset deltas of the detected period.
	Deltas []float64 `json:"deltas,omitempty"`
	// Cells is the number of destination cells written.
	Cells int `json:"cells"`
}

// DirectionReport groups the lines filled in one direction.
type DirectionReport struct {
	Direction Direction    `json:"direction"`
	Lines     []LineReport `json:"lines"`
}

// FillReport summarizes one autofill invocation.
type FillReport struct {
	// Sheet is the sheet name when the grid has one.
	Sheet string `json:"sheet,omitempty"`
	// Source is the source range.
	Source Rect `json:"source"`
	// Target is the destination range as requested.
	Target Rect `json:"target"`
	// Directions lists the fills that were applied.
	Directions []DirectionReport `json:"directions,omitempty"`
}

// CellsWritten returns the total number of destination cells written.
func (r *FillReport) CellsWritten() int {
	n := 0
	for _, d := range r.Directions {
		for _, l := range d.Lines {
			n += l.Cells
		}
	}
	return n
}
