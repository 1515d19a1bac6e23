package sheetfill

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range string like "$A$1:$D$10" or a single cell
// like "B3" into a Rect.
func ParseRange(rangeStr string) (models.Rect, error) {
	// Remove $ signs
	ref := strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return models.Rect{}, fmt.Errorf("%w: %q", ErrInvalidRange, rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Rect{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, rangeStr, err)
	}
	endCol, endRow := startCol, startRow
	if len(parts) == 2 {
		endCol, endRow, err = excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return models.Rect{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, rangeStr, err)
		}
	}

	return models.Rect{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}.Normalize(), nil
}

// FormatRange renders r as an A1-style range.
func FormatRange(r models.Rect) string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	if r.R1 == r.R2 && r.C1 == r.C2 {
		return start
	}
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return start + ":" + end
}
