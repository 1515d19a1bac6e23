package sheetfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/lists"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
)

func TestLinePosition(t *testing.T) {
	forward := line{sources: make([]models.Cell, 3), forward: true}
	assert.Equal(t, 3, forward.position(0))
	assert.Equal(t, 5, forward.position(2))

	backward := line{sources: make([]models.Cell, 3)}
	assert.Equal(t, -1, backward.position(0))
	assert.Equal(t, -3, backward.position(2))
}

func TestCopyText(t *testing.T) {
	ref := testLists()
	dst := cellPos{col: 1, row: 2}
	date := numberCell(45000)
	date.Date = true
	formulaCell := textCell("=B1*2")
	formulaCell.Formula = true

	tests := []struct {
		name    string
		src     models.Cell
		n, k    int
		forward bool
		want    string
	}{
		{"formula", formulaCell, 1, 0, true, "=B2*2"},
		{"number", numberCell(3), 1, 1, true, "9"},
		{"number backwards", numberCell(3), 1, 0, false, "0"},
		{"number in multi-cell source", numberCell(3), 2, 0, true, "3"},
		{"date is copied", date, 1, 0, true, "45000"},
		{"weekday", textCell("Friday"), 1, 2, true, "Monday"},
		{"short month backwards", textCell("Feb"), 1, 1, false, "Dec"},
		{"custom", textCell("blue"), 1, 0, true, "red"},
		{"embedded integer", textCell("Q1 total"), 1, 1, true, "Q3 total"},
		{"embedded integer per cycle", textCell("Q1 total"), 2, 3, true, "Q3 total"},
		{"two digit runs", textCell("1 of 3"), 1, 0, true, "1 of 3"},
		{"verbatim", textCell("Total"), 1, 5, true, "Total"},
		{"empty", textCell(""), 1, 0, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, copyText(tt.src, dst, tt.n, tt.k, tt.forward, ref))
		})
	}
}

func TestCycleName(t *testing.T) {
	name, ok := cycleName("Sunday", 1, lists.Default())
	assert.True(t, ok)
	assert.Equal(t, "Monday", name)

	_, ok = cycleName("blue", 1, lists.Default())
	assert.False(t, ok)

	_, ok = cycleName("Monday", 1, nil)
	assert.False(t, ok)
}

func TestBumpEmbeddedInteger(t *testing.T) {
	got, ok := bumpEmbeddedInteger("Room 9B", 2)
	assert.True(t, ok)
	assert.Equal(t, "Room 11B", got)

	got, ok = bumpEmbeddedInteger("v1", -3)
	assert.True(t, ok)
	assert.Equal(t, "v-2", got)

	_, ok = bumpEmbeddedInteger("no digits", 1)
	assert.False(t, ok)
}
