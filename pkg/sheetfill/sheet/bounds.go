package sheet

import (
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
	"github.com/xuri/excelize/v2"
)

// UsedRange returns the bounding box of the non-empty cells of the sheet.
// ok is false for an empty sheet.
func (x *XLSX) UsedRange() (rect models.Rect, ok bool, err error) {
	rows, err := x.f.GetRows(x.sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Rect{}, false, err
	}
	return dataBounds(rows)
}

// UsedRange returns the bounding box of the non-empty cells.
func (m *Memory) UsedRange() (models.Rect, bool, error) {
	var rect models.Rect
	found := false
	for k, c := range m.cells {
		if c.text == "" {
			continue
		}
		if !found {
			rect = models.Rect{R1: k.row, C1: k.col, R2: k.row, C2: k.col}
			found = true
			continue
		}
		rect.R1 = min(rect.R1, k.row)
		rect.R2 = max(rect.R2, k.row)
		rect.C1 = min(rect.C1, k.col)
		rect.C2 = max(rect.C2, k.col)
	}
	return rect, found, nil
}

// dataBounds finds the 1-based bounding box of non-empty cells.
func dataBounds(rows [][]string) (models.Rect, bool, error) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		return models.Rect{}, false, nil
	}
	return models.Rect{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true, nil
}

// FillDownTarget extends src down to the last row of used, the way a
// double-click on the fill handle does. ok is false when src already
// reaches that row.
func FillDownTarget(src, used models.Rect) (models.Rect, bool) {
	src = src.Normalize()
	if used.R2 <= src.R2 {
		return src, false
	}
	return models.Rect{R1: src.R1, C1: src.C1, R2: used.R2, C2: src.C2}, true
}
