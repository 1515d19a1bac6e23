// Package models defines data structures shared by the autofill engine and
// its grid implementations.
package models

// FormatType is the coarse number-format category of a cell.
type FormatType string

const (
	FormatGeneric FormatType = "generic"
	FormatNumber  FormatType = "number"
	FormatPercent FormatType = "percent"
	FormatDate    FormatType = "date"
	FormatTime    FormatType = "time"
	FormatText    FormatType = "text"
)

// Cell is a read-only snapshot of one grid cell.
type Cell struct {
	// Col is the column index (1-based).
	Col int `json:"c"`
	// Row is the row index (1-based).
	Row int `json:"r"`
	// Text is the user input of the cell. Formula cells carry the formula
	// including the leading "=".
	Text string `json:"text"`
	// Value is the numeric value (date/time serial for dates and times).
	// Only meaningful when Numeric is set.
	Value float64 `json:"value,omitempty"`
	// Numeric reports whether the cell holds a number.
	Numeric bool `json:"numeric,omitempty"`
	// Formula reports whether the cell holds a formula.
	Formula bool `json:"formula,omitempty"`
	// Date reports whether the numeric value is displayed as a date.
	Date bool `json:"date,omitempty"`
	// Time reports whether the numeric value is displayed as a time.
	Time bool `json:"time,omitempty"`
	// Format is the number-format category.
	Format FormatType `json:"format,omitempty"`
}

// IsEmpty reports whether the cell holds no content.
func (c Cell) IsEmpty() bool {
	return c.Text == "" && !c.Numeric && !c.Formula
}
