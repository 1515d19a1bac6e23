package sheetfill

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
)

// ErrInvalidRange indicates a range reference that cannot be parsed.
var ErrInvalidRange = errors.New("invalid range")

// FillError represents a grid failure while filling one line.
type FillError struct {
	Direction models.Direction
	Line      int // row for horizontal fills, column for vertical fills
	Err       error
}

func (e *FillError) Error() string {
	return fmt.Sprintf("autofill %s, line %d: %v", e.Direction, e.Line, e.Err)
}

func (e *FillError) Unwrap() error {
	return e.Err
}

// NewFillError creates a new FillError.
func NewFillError(dir models.Direction, line int, err error) *FillError {
	return &FillError{
		Direction: dir,
		Line:      line,
		Err:       err,
	}
}
