package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
)

func TestMemoryCell(t *testing.T) {
	m := NewMemory("Sheet1")
	require.NoError(t, m.Set("A1", "12"))
	require.NoError(t, m.Set("A2", "2.5"))
	require.NoError(t, m.Set("A3", "=A1+A2"))
	require.NoError(t, m.Set("A4", "5%"))
	require.NoError(t, m.Set("A5", "Mon"))
	require.NoError(t, m.Set("A6", "45000"))
	require.NoError(t, m.SetFormat("A6", Format{Type: models.FormatDate}))

	tests := []struct {
		row  int
		want models.Cell
	}{
		{1, models.Cell{Text: "12", Value: 12, Numeric: true, Format: models.FormatGeneric}},
		{2, models.Cell{Text: "2.5", Value: 2.5, Numeric: true, Format: models.FormatGeneric}},
		{3, models.Cell{Text: "=A1+A2", Formula: true, Format: models.FormatGeneric}},
		{4, models.Cell{Text: "5%", Value: 0.05, Numeric: true, Format: models.FormatPercent}},
		{5, models.Cell{Text: "Mon", Format: models.FormatGeneric}},
		{6, models.Cell{Text: "45000", Value: 45000, Numeric: true, Date: true, Format: models.FormatDate}},
		{7, models.Cell{Format: models.FormatGeneric}},
	}
	for _, tt := range tests {
		got, err := m.Cell(1, tt.row)
		require.NoError(t, err)
		tt.want.Col, tt.want.Row = 1, tt.row
		assert.Equal(t, tt.want, got, "row %d", tt.row)
	}

	assert.Equal(t, 6, m.Len())
	_, err := m.Cell(0, 1)
	assert.Error(t, err)
	assert.Error(t, m.Set("not a cell", "x"))
}

func TestMemoryCopyFormat(t *testing.T) {
	m := NewMemory("Sheet1")
	src := Format{
		Type:   models.FormatPercent,
		NumFmt: "0%",
		Font:   &Font{Family: "Arial", Size: 10, Bold: true},
		Fill:   []string{"FFFF00"},
	}
	require.NoError(t, m.SetFormat("A1", src))
	require.NoError(t, m.CopyFormat(1, 1, 2, 1))

	got := m.Format("B1")
	assert.Equal(t, src, got)

	// The copy must not share the font or fill with its source.
	got.Font.Bold = false
	got.Fill[0] = "000000"
	assert.True(t, m.Format("A1").Font.Bold)
	assert.Equal(t, "FFFF00", m.Format("A1").Fill[0])

	require.NoError(t, m.Set("C1", "x"))
	require.NoError(t, m.CopyFormat(4, 4, 3, 1))
	assert.Equal(t, Format{}, m.Format("C1"))
	assert.Equal(t, "x", m.Text("C1"))
}

func TestMemorySetFormatType(t *testing.T) {
	m := NewMemory("Sheet1")
	require.NoError(t, m.Set("A1", "0.5"))
	require.NoError(t, m.SetFormatType(1, 1, models.FormatTime))

	cell, err := m.Cell(1, 1)
	require.NoError(t, err)
	assert.True(t, cell.Time)
	assert.Equal(t, "h:mm:ss", m.Format("A1").NumFmt)

	require.NoError(t, m.SetFormat("B1", Format{Type: models.FormatDate, NumFmt: "yyyy-mm-dd"}))
	require.NoError(t, m.SetFormatType(2, 1, models.FormatDate))
	assert.Equal(t, "yyyy-mm-dd", m.Format("B1").NumFmt)

	require.NoError(t, m.SetFormatType(3, 1, models.FormatGeneric))
	assert.Equal(t, Format{}, m.Format("C1"))
}

func TestMemoryPercentInput(t *testing.T) {
	m := NewMemory("Sheet1")
	require.NoError(t, m.Set("A1", "5%"))
	assert.Equal(t, Format{Type: models.FormatPercent, NumFmt: "0.00%"}, m.Format("A1"))

	require.NoError(t, m.SetFormat("B1", Format{Type: models.FormatNumber, NumFmt: "0.00"}))
	require.NoError(t, m.Set("B1", "5%"))
	assert.Equal(t, models.FormatNumber, m.Format("B1").Type)

	require.NoError(t, m.Set("A1", "0.06"))
	cell, err := m.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, models.FormatPercent, cell.Format)
	assert.InDelta(t, 0.06, cell.Value, 1e-12)
}

func TestMemoryUsedRange(t *testing.T) {
	m := NewMemory("Sheet1")
	_, ok, err := m.UsedRange()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set("C3", "a"))
	require.NoError(t, m.Set("B5", "b"))
	require.NoError(t, m.SetFormatType(9, 9, models.FormatDate))
	rect, ok, err := m.UsedRange()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.Rect{R1: 3, C1: 2, R2: 5, C2: 3}, rect)
}
