package sheetfill

import "github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"

// Grid is the cell storage an autofill reads from and writes to.
// Coordinates are 1-based.
type Grid interface {
	// Cell returns a snapshot of the cell at (col, row). Missing cells are
	// returned empty.
	Cell(col, row int) (models.Cell, error)
	// SetText stores user input in the cell. Text starting with "=" is a
	// formula; text that parses as a number is stored as a number.
	// Implementations should not recalculate dependent cells here.
	SetText(col, row int, text string) error
	// CopyFormat copies the complete format of the source cell onto the
	// destination cell.
	CopyFormat(srcCol, srcRow, dstCol, dstRow int) error
	// SetFormatType sets the number-format category of the cell.
	SetFormatType(col, row int, ft models.FormatType) error
}

// Recalculator is implemented by grids that recalculate formulas. An
// autofill calls Recalculate once after all cells have been written.
type Recalculator interface {
	Recalculate() error
}

// StringWriter is implemented by grids that store cell types. SetString
// stores text as a string without reading it as a number or formula.
// Fills use it for values derived from text cells.
type StringWriter interface {
	SetString(col, row int, text string) error
}

// ValueCopier is implemented by grids that store cell types. CopyValue
// copies a value together with its type. Fills use it when a text cell
// is copied unchanged.
type ValueCopier interface {
	CopyValue(srcCol, srcRow, dstCol, dstRow int) error
}
