package sheetfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
)

func TestComputeDelta(t *testing.T) {
	ref := testLists()
	seq := func(c models.Cell) Sequence { return Classify(c, ref) }
	formulaAt := func(text string, row int) models.Cell {
		c := textCell(text)
		c.Row, c.Formula = row, true
		return c
	}

	tests := []struct {
		name  string
		a, b  Sequence
		valid bool
		want  float64
	}{
		{"integers", seq(numberCell(1)), seq(numberCell(3)), true, 2},
		{"floats", seq(numberCell(1.5)), seq(numberCell(1.25)), true, -0.25},
		{"integer and float", seq(numberCell(1)), seq(numberCell(1.5)), false, 0},
		{"equal strings", seq(textCell("a")), seq(textCell("a")), true, 0},
		{"different strings", seq(textCell("a")), seq(textCell("b")), false, 0},
		{"same relative formula", seq(formulaAt("=A1+1", 2)), seq(formulaAt("=A2+1", 3)), true, 0},
		{"different formula", seq(formulaAt("=A1+1", 2)), seq(formulaAt("=A1+1", 3)), false, 0},
		{"months forward", seq(textCell("Jan")), seq(textCell("Mar")), true, 2},
		{"months across year", seq(textCell("Nov")), seq(textCell("Jan")), true, 2},
		{"month one back", seq(textCell("Mar")), seq(textCell("Feb")), true, -1},
		{"month two back", seq(textCell("Mar")), seq(textCell("Jan")), true, 10},
		{"days", seq(textCell("Wed")), seq(textCell("Mon")), true, 5},
		{"month kinds differ", seq(textCell("Jan")), seq(textCell("February")), false, 0},
		{"custom", seq(textCell("red")), seq(textCell("blue")), true, 2},
		{"custom wraps", seq(textCell("high")), seq(textCell("mid")), true, 2},
		{"custom groups differ", seq(textCell("red")), seq(textCell("low")), false, 0},
		{"arity", seq(textCell("a")), Sequence{}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ComputeDelta(tt.a, tt.b)
			require.Equal(t, tt.valid, d.Valid())
			if tt.valid {
				assert.Equal(t, 1, d.Len())
				assert.InDelta(t, tt.want, d.At(0), 1e-12)
			}
		})
	}
}

func TestComputeDeltaEmpty(t *testing.T) {
	d := ComputeDelta(Sequence{}, Sequence{})
	assert.True(t, d.Valid())
	assert.Equal(t, 0, d.Len())
	assert.True(t, d.Zero())
}

func TestDeltaEqualIsReflexive(t *testing.T) {
	ref := testLists()
	pairs := [][2]models.Cell{
		{numberCell(1), numberCell(7)},
		{numberCell(0.5), numberCell(2.75)},
		{textCell("x"), textCell("x")},
		{textCell("Sat"), textCell("Tue")},
		{textCell("green"), textCell("red")},
	}
	for _, p := range pairs {
		a, b := Classify(p[0], ref), Classify(p[1], ref)
		d := ComputeDelta(a, b)
		require.True(t, d.Valid(), "%q -> %q", p[0].Text, p[1].Text)
		assert.True(t, d.Equal(ComputeDelta(a, b)))
		assert.True(t, a.Matches(b, d))
	}
}

func TestDeltaSequence(t *testing.T) {
	d := NewDeltaSequence(1, 2)
	assert.True(t, d.Valid())
	assert.Equal(t, []float64{1, 2}, d.Values())
	assert.Equal(t, 0.0, d.At(5))
	assert.Equal(t, 0.0, d.At(-1))
	assert.False(t, d.Zero())
	assert.True(t, NewDeltaSequence(0, 0).Zero())

	assert.True(t, d.Equal(NewDeltaSequence(1, 2)))
	assert.False(t, d.Equal(NewDeltaSequence(1)))
	assert.False(t, d.Equal(NewDeltaSequence(1, 3)))

	var invalid DeltaSequence
	assert.False(t, invalid.Valid())
	assert.False(t, invalid.Equal(invalid))
	assert.False(t, invalid.Zero())

	values := d.Values()
	values[0] = 9
	assert.Equal(t, 1.0, d.At(0))
}
