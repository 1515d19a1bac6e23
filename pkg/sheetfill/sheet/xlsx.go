package sheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// XLSX is a grid over one worksheet of an excelize workbook.
type XLSX struct {
	f      *excelize.File
	sheet  string
	styles map[int]models.FormatType
	// formulas is set once a formula has been written.
	formulas bool
}

// OpenXLSX opens the workbook at path and selects sheet. An empty sheet
// selects the active sheet.
func OpenXLSX(path, sheet string) (*XLSX, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	x, err := NewXLSX(f, sheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	return x, nil
}

// NewXLSX wraps an open workbook. An empty sheet selects the active sheet.
func NewXLSX(f *excelize.File, sheet string) (*XLSX, error) {
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	return &XLSX{
		f:      f,
		sheet:  sheet,
		styles: make(map[int]models.FormatType),
	}, nil
}

// File returns the underlying workbook.
func (x *XLSX) File() *excelize.File {
	return x.f
}

// Name returns the worksheet name.
func (x *XLSX) Name() string {
	return x.sheet
}

// Save writes the workbook back to the path it was opened from.
func (x *XLSX) Save() error {
	return x.f.Save()
}

// SaveAs writes the workbook to path.
func (x *XLSX) SaveAs(path string) error {
	return x.f.SaveAs(path)
}

// Close releases the workbook.
func (x *XLSX) Close() error {
	return x.f.Close()
}

// Cell returns a snapshot of the cell at col, row.
func (x *XLSX) Cell(col, row int) (models.Cell, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Cell{}, err
	}
	ft, err := x.formatType(name)
	if err != nil {
		return models.Cell{}, err
	}
	cell := models.Cell{Col: col, Row: row, Format: ft}

	formula, err := x.f.GetCellFormula(x.sheet, name)
	if err != nil {
		return models.Cell{}, err
	}
	if formula != "" {
		cell.Text = "=" + formula
		cell.Formula = true
		return cell, nil
	}

	raw, err := x.f.GetCellValue(x.sheet, name, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Cell{}, err
	}
	cell.Text = raw
	if raw == "" {
		return cell, nil
	}

	typ, err := x.f.GetCellType(x.sheet, name)
	if err != nil {
		return models.Cell{}, err
	}
	switch typ {
	case excelize.CellTypeBool:
		cell.Text = boolText(raw)
		return cell, nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return cell, nil
	}

	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		cell.Numeric = true
		cell.Value = v
		cell.Date = ft == models.FormatDate
		cell.Time = ft == models.FormatTime
	}
	return cell, nil
}

// SetText writes text into the cell at col, row. Text starting with "="
// is stored as a formula and numeric text as a number.
func (x *XLSX) SetText(col, row int, text string) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	if strings.HasPrefix(text, "=") && len(text) > 1 {
		x.formulas = true
		return x.f.SetCellFormula(x.sheet, name, text[1:])
	}

	if err := x.clearFormula(name); err != nil {
		return err
	}
	return x.f.SetCellValue(x.sheet, name, parseValue(text))
}

// SetString writes text into the cell at col, row as a string.
func (x *XLSX) SetString(col, row int, text string) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := x.clearFormula(name); err != nil {
		return err
	}
	return x.f.SetCellStr(x.sheet, name, text)
}

// CopyValue copies the value of one cell to another. Booleans stay
// booleans and everything else that is not a formula is copied as stored.
func (x *XLSX) CopyValue(srcCol, srcRow, dstCol, dstRow int) error {
	src, err := excelize.CoordinatesToCellName(srcCol, srcRow)
	if err != nil {
		return err
	}
	dst, err := excelize.CoordinatesToCellName(dstCol, dstRow)
	if err != nil {
		return err
	}
	formula, err := x.f.GetCellFormula(x.sheet, src)
	if err != nil {
		return err
	}
	if formula != "" {
		x.formulas = true
		return x.f.SetCellFormula(x.sheet, dst, formula)
	}
	if err := x.clearFormula(dst); err != nil {
		return err
	}

	raw, err := x.f.GetCellValue(x.sheet, src, excelize.Options{RawCellValue: true})
	if err != nil {
		return err
	}
	typ, err := x.f.GetCellType(x.sheet, src)
	if err != nil {
		return err
	}
	switch typ {
	case excelize.CellTypeBool:
		return x.f.SetCellBool(x.sheet, dst, raw == "1")
	case excelize.CellTypeNumber, excelize.CellTypeDate:
		return x.f.SetCellValue(x.sheet, dst, parseValue(raw))
	case excelize.CellTypeUnset:
		if raw == "" {
			return x.f.SetCellValue(x.sheet, dst, nil)
		}
		return x.f.SetCellValue(x.sheet, dst, parseValue(raw))
	}
	return x.f.SetCellStr(x.sheet, dst, raw)
}

func (x *XLSX) clearFormula(name string) error {
	formula, err := x.f.GetCellFormula(x.sheet, name)
	if err != nil {
		return err
	}
	if formula == "" {
		return nil
	}
	return x.f.SetCellFormula(x.sheet, name, "")
}

// CopyFormat applies the style of one cell to another.
func (x *XLSX) CopyFormat(srcCol, srcRow, dstCol, dstRow int) error {
	src, err := excelize.CoordinatesToCellName(srcCol, srcRow)
	if err != nil {
		return err
	}
	dst, err := excelize.CoordinatesToCellName(dstCol, dstRow)
	if err != nil {
		return err
	}
	styleID, err := x.f.GetCellStyle(x.sheet, src)
	if err != nil {
		return err
	}
	return x.f.SetCellStyle(x.sheet, dst, dst, styleID)
}

// SetFormatType switches the number format of the cell at col, row to the
// built-in format of ft, keeping the rest of its style.
func (x *XLSX) SetFormatType(col, row int, ft models.FormatType) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	current, err := x.formatType(name)
	if err != nil {
		return err
	}
	if current == ft {
		return nil
	}

	styleID, err := x.f.GetCellStyle(x.sheet, name)
	if err != nil {
		return err
	}
	style, err := x.f.GetStyle(styleID)
	if err != nil {
		return err
	}
	style.NumFmt = builtinIDs[ft]
	style.CustomNumFmt = nil
	newID, err := x.f.NewStyle(style)
	if err != nil {
		return err
	}
	return x.f.SetCellStyle(x.sheet, name, name, newID)
}

// Recalculate marks the workbook for a full recalculation when it is next
// opened, so formulas written by a fill show current values.
func (x *XLSX) Recalculate() error {
	if !x.formulas {
		return nil
	}
	fullCalc := true
	return x.f.SetCalcProps(&excelize.CalcPropsOptions{FullCalcOnLoad: &fullCalc})
}

func boolText(raw string) string {
	if raw == "1" {
		return "TRUE"
	}
	return "FALSE"
}

// formatType classifies the number format of the named cell.
func (x *XLSX) formatType(name string) (models.FormatType, error) {
	styleID, err := x.f.GetCellStyle(x.sheet, name)
	if err != nil {
		return "", err
	}
	if ft, ok := x.styles[styleID]; ok {
		return ft, nil
	}
	style, err := x.f.GetStyle(styleID)
	if err != nil {
		return "", err
	}
	ft := BuiltinFormatType(style.NumFmt)
	if style.CustomNumFmt != nil {
		ft = ClassifyNumFmt(*style.CustomNumFmt)
	}
	x.styles[styleID] = ft
	return ft, nil
}
