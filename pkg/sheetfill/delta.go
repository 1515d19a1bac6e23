package sheetfill

// DeltaSequence holds one delta per item position of two sequences of the
// same shape. The zero value is invalid.
type DeltaSequence struct {
	values []float64
	ok     bool
}

// NewDeltaSequence creates a valid DeltaSequence from explicit values.
func NewDeltaSequence(values ...float64) DeltaSequence {
	return DeltaSequence{values: append([]float64{}, values...), ok: true}
}

// ComputeDelta returns the per-position delta that turns a into b. The
// result is invalid when the arities differ, a position differs in kind,
// or a string/formula position differs in payload.
func ComputeDelta(a, b Sequence) DeltaSequence {
	if len(a) != len(b) {
		return DeltaSequence{}
	}
	values := make([]float64, len(a))
	for i := range a {
		d, ok := a[i].delta(b[i])
		if !ok {
			return DeltaSequence{}
		}
		values[i] = d
	}
	return DeltaSequence{values: values, ok: true}
}

// Valid reports whether every position was computable.
func (d DeltaSequence) Valid() bool {
	return d.ok
}

// Len returns the number of positions.
func (d DeltaSequence) Len() int {
	return len(d.values)
}

// At returns the delta at position i, or 0 outside the sequence.
func (d DeltaSequence) At(i int) float64 {
	if i < 0 || i >= len(d.values) {
		return 0
	}
	return d.values[i]
}

// Values returns a copy of the deltas.
func (d DeltaSequence) Values() []float64 {
	return append([]float64(nil), d.values...)
}

// Zero reports whether d is valid and every position is zero.
func (d DeltaSequence) Zero() bool {
	if !d.ok {
		return false
	}
	for _, v := range d.values {
		if v != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both sequences are valid and match exactly at
// every position.
func (d DeltaSequence) Equal(o DeltaSequence) bool {
	if !d.ok || !o.ok || len(d.values) != len(o.values) {
		return false
	}
	for i := range d.values {
		if d.values[i] != o.values[i] {
			return false
		}
	}
	return true
}

// delta computes the difference from it to o.
func (it Item) delta(o Item) (float64, bool) {
	if it.Kind != o.Kind {
		return 0, false
	}

	switch it.Kind {
	case KindInteger:
		return float64(o.Int - it.Int), true
	case KindFloat, KindDate, KindTime:
		return o.Float - it.Float, true
	case KindString, KindFormula:
		if it.Text == o.Text {
			return 0, true
		}
		return 0, false
	case KindMonth, KindShortMonth, KindDay, KindShortDay:
		i, j := it.Index, o.Index
		k := j
		if j < i {
			k += it.names.Len()
		}
		// Stepping back by one is reported as -1 rather than as the
		// forward distance around the list.
		if j+1 == i {
			return -1, true
		}
		return float64(k - i), true
	case KindCustom:
		if it.Begin != o.Begin || it.End != o.End {
			return 0, false
		}
		i, j := it.Index, o.Index
		k := j
		if j < i {
			k += it.End - it.Begin
		}
		return float64(k - i), true
	}
	return 0, false
}
