// Package sheet provides Grid implementations for the autofill engine: an
// in-memory grid and a grid backed by an xlsx workbook.
package sheet

import (
	"strconv"
	"strings"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
	"github.com/xuri/excelize/v2"
)

// Format is the formatting attached to a Memory cell.
type Format struct {
	Type   models.FormatType
	NumFmt string
	Font   *Font
	Fill   []string
}

// Font describes the font of a Memory cell.
type Font struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
	Color  string
}

func (f Format) typeOrGeneric() models.FormatType {
	if f.Type == "" {
		return models.FormatGeneric
	}
	return f.Type
}

type memCell struct {
	text   string
	format Format
}

type coord struct {
	col, row int
}

// Memory is a sparse in-memory worksheet.
type Memory struct {
	name  string
	cells map[coord]*memCell
}

// NewMemory creates an empty worksheet.
func NewMemory(name string) *Memory {
	return &Memory{
		name:  name,
		cells: make(map[coord]*memCell),
	}
}

// Name returns the worksheet name.
func (m *Memory) Name() string {
	return m.name
}

// Set writes text into the cell named by an A1 reference.
func (m *Memory) Set(cell, text string) error {
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return err
	}
	return m.SetText(col, row, text)
}

// SetFormat replaces the format of the cell named by an A1 reference.
func (m *Memory) SetFormat(cell string, f Format) error {
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return err
	}
	m.cell(col, row).format = f
	return nil
}

// Text returns the text of the cell named by an A1 reference.
func (m *Memory) Text(cell string) string {
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return ""
	}
	if c, ok := m.cells[coord{col, row}]; ok {
		return c.text
	}
	return ""
}

// Format returns the format of the cell named by an A1 reference.
func (m *Memory) Format(cell string) Format {
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return Format{}
	}
	if c, ok := m.cells[coord{col, row}]; ok {
		return c.format
	}
	return Format{}
}

// Len returns the number of non-empty cells.
func (m *Memory) Len() int {
	n := 0
	for _, c := range m.cells {
		if c.text != "" {
			n++
		}
	}
	return n
}

// Cell returns a snapshot of the cell at col, row.
func (m *Memory) Cell(col, row int) (models.Cell, error) {
	if err := checkCoordinates(col, row); err != nil {
		return models.Cell{}, err
	}
	cell := models.Cell{Col: col, Row: row, Format: models.FormatGeneric}
	c, ok := m.cells[coord{col, row}]
	if !ok {
		return cell, nil
	}
	cell.Text = c.text
	cell.Format = c.format.typeOrGeneric()

	switch v := parseValue(c.text).(type) {
	case int64:
		cell.Numeric, cell.Value = true, float64(v)
	case float64:
		cell.Numeric, cell.Value = true, v
	case string:
		if strings.HasPrefix(v, "=") && len(v) > 1 {
			cell.Formula = true
		} else if p, ok := parsePercent(v); ok {
			cell.Numeric, cell.Value = true, p
			if cell.Format == models.FormatGeneric {
				cell.Format = models.FormatPercent
			}
		}
	}
	if cell.Numeric {
		cell.Date = cell.Format == models.FormatDate
		cell.Time = cell.Format == models.FormatTime
	}
	return cell, nil
}

// SetText writes text into the cell at col, row, keeping its format.
// Percent input such as "5%" gives a generic cell the percent format.
func (m *Memory) SetText(col, row int, text string) error {
	if err := checkCoordinates(col, row); err != nil {
		return err
	}
	c := m.cell(col, row)
	c.text = text
	if _, ok := parsePercent(text); ok && c.format.typeOrGeneric() == models.FormatGeneric {
		c.format.Type = models.FormatPercent
		c.format.NumFmt = builtinCode(models.FormatPercent)
	}
	return nil
}

// CopyFormat copies the complete format of one cell onto another.
func (m *Memory) CopyFormat(srcCol, srcRow, dstCol, dstRow int) error {
	if err := checkCoordinates(srcCol, srcRow); err != nil {
		return err
	}
	if err := checkCoordinates(dstCol, dstRow); err != nil {
		return err
	}
	var src Format
	if c, ok := m.cells[coord{srcCol, srcRow}]; ok {
		src = c.format
	}
	var dst Format
	if err := deepcopy.Copy(&dst, src); err != nil {
		return err
	}
	m.cell(dstCol, dstRow).format = dst
	return nil
}

// SetFormatType sets the value format of the cell at col, row. A cell
// that already has the format type keeps its number format code.
func (m *Memory) SetFormatType(col, row int, ft models.FormatType) error {
	if err := checkCoordinates(col, row); err != nil {
		return err
	}
	c := m.cell(col, row)
	if c.format.typeOrGeneric() == ft {
		return nil
	}
	c.format.Type = ft
	c.format.NumFmt = builtinCode(ft)
	return nil
}

func (m *Memory) cell(col, row int) *memCell {
	k := coord{col, row}
	c, ok := m.cells[k]
	if !ok {
		c = &memCell{}
		m.cells[k] = c
	}
	return c
}

func checkCoordinates(col, row int) error {
	_, err := excelize.CoordinatesToCellName(col, row)
	return err
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !strings.ContainsAny(s, "xXpPnN_") {
		return f
	}
	return s
}

// parsePercent parses text such as "5%" into 0.05.
func parsePercent(s string) (float64, bool) {
	num, ok := strings.CutSuffix(s, "%")
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, false
	}
	return f / 100, true
}
