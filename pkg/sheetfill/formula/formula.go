// Package formula moves cell references inside spreadsheet formulas.
package formula

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/efp"
	"github.com/xuri/excelize/v2"
)

// RefError is written in place of a reference shifted off the sheet.
const RefError = "#REF!"

var (
	cellPattern = regexp.MustCompile(`^(\$?)([A-Za-z]{1,3})(\$?)([0-9]+)$`)
	colPattern  = regexp.MustCompile(`^(\$?)([A-Za-z]{1,3})$`)
	rowPattern  = regexp.MustCompile(`^(\$?)([0-9]+)$`)
)

// reference is one end of an A1-style reference. Whole-column and
// whole-row references leave the other axis unset.
type reference struct {
	col, row       int
	colAbs, rowAbs bool
	hasCol, hasRow bool
}

func parseReference(s string, partial bool) (reference, bool) {
	if m := cellPattern.FindStringSubmatch(s); m != nil {
		col, err := excelize.ColumnNameToNumber(m[2])
		if err != nil {
			return reference{}, false
		}
		row, err := strconv.Atoi(m[4])
		if err != nil {
			return reference{}, false
		}
		return reference{
			col: col, row: row,
			colAbs: m[1] == "$", rowAbs: m[3] == "$",
			hasCol: true, hasRow: true,
		}, true
	}
	if !partial {
		return reference{}, false
	}
	if m := colPattern.FindStringSubmatch(s); m != nil {
		col, err := excelize.ColumnNameToNumber(m[2])
		if err != nil {
			return reference{}, false
		}
		return reference{col: col, colAbs: m[1] == "$", hasCol: true}, true
	}
	if m := rowPattern.FindStringSubmatch(s); m != nil {
		row, err := strconv.Atoi(m[2])
		if err != nil {
			return reference{}, false
		}
		return reference{row: row, rowAbs: m[1] == "$", hasRow: true}, true
	}
	return reference{}, false
}

func (r reference) valid() bool {
	if r.hasCol && (r.col < 1 || r.col > excelize.MaxColumns) {
		return false
	}
	if r.hasRow && (r.row < 1 || r.row > excelize.TotalRows) {
		return false
	}
	return true
}

func (r reference) String() string {
	var b strings.Builder
	if r.hasCol {
		if r.colAbs {
			b.WriteByte('$')
		}
		name, _ := excelize.ColumnNumberToName(r.col)
		b.WriteString(name)
	}
	if r.hasRow {
		if r.rowAbs {
			b.WriteByte('$')
		}
		b.WriteString(strconv.Itoa(r.row))
	}
	return b.String()
}

// relative renders r in an R1C1-like notation where relative axes are
// offsets from (col, row).
func (r reference) relative(col, row int) string {
	var b strings.Builder
	if r.hasRow {
		if r.rowAbs {
			fmt.Fprintf(&b, "R%d", r.row)
		} else {
			fmt.Fprintf(&b, "R[%d]", r.row-row)
		}
	}
	if r.hasCol {
		if r.colAbs {
			fmt.Fprintf(&b, "C%d", r.col)
		} else {
			fmt.Fprintf(&b, "C[%d]", r.col-col)
		}
	}
	return b.String()
}

// mapRange applies fn to every end of a range operand such as
// "Sheet1!$A1:B$2". Operands that are not cell references (named ranges)
// are returned unchanged.
func mapRange(operand string, fn func(reference) (string, bool)) string {
	prefix, ref := "", operand
	if i := strings.LastIndex(operand, "!"); i >= 0 {
		prefix, ref = operand[:i+1], operand[i+1:]
	}

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return operand
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		r, ok := parseReference(p, len(parts) == 2)
		if !ok {
			return operand
		}
		s, ok := fn(r)
		if !ok {
			return RefError
		}
		out[i] = s
	}
	return prefix + strings.Join(out, ":")
}

// Shift moves every relative reference in formula by dCol columns and dRow
// rows. Absolute axes ($) stay in place; references moved off the sheet
// become #REF!. A leading "=" is preserved.
func Shift(formula string, dCol, dRow int) string {
	return rewrite(formula, func(operand string) string {
		return mapRange(operand, func(r reference) (string, bool) {
			if r.hasCol && !r.colAbs {
				r.col += dCol
			}
			if r.hasRow && !r.rowAbs {
				r.row += dRow
			}
			return r.String(), r.valid()
		})
	})
}

// Encode rewrites formula, as entered in the cell at (col, row), so that
// relative references are expressed as offsets. Two formulas copied from
// each other encode to the same string.
func Encode(formula string, col, row int) string {
	return rewrite(formula, func(operand string) string {
		return mapRange(operand, func(r reference) (string, bool) {
			return r.relative(col, row), true
		})
	})
}

// References returns the range operands of formula in order of
// appearance.
func References(formula string) []string {
	body := strings.TrimPrefix(strings.TrimSpace(formula), "=")
	ps := efp.ExcelParser()

	var refs []string
	for _, token := range ps.Parse(body) {
		if token.TType == efp.TokenTypeOperand && token.TSubType == efp.TokenSubTypeRange {
			refs = append(refs, token.TValue)
		}
	}
	return refs
}

// rewrite replaces the range operands of formula in place so that the
// rest of the text keeps its original spelling and spacing.
func rewrite(formula string, fn func(string) string) string {
	lead := ""
	body := formula
	if strings.HasPrefix(body, "=") {
		lead, body = "=", body[1:]
	}

	var b strings.Builder
	b.WriteString(lead)
	pos := 0
	for _, operand := range References(body) {
		at := locate(body, operand, pos)
		if at < 0 {
			continue
		}
		b.WriteString(body[pos:at])
		b.WriteString(fn(operand))
		pos = at + len(operand)
	}
	b.WriteString(body[pos:])
	return b.String()
}

// locate finds operand in s at or after from, skipping string literals
// and matches that continue an identifier.
func locate(s, operand string, from int) int {
	inString := false
	for i := from; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			inString = !inString
			continue
		}
		if inString || !strings.HasPrefix(s[i:], operand) {
			continue
		}
		if i > 0 && isIdentByte(s[i-1]) {
			continue
		}
		if end := i + len(operand); end < len(s) && isIdentByte(s[end]) {
			continue
		}
		return i
	}
	return -1
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '.' || c == '$' || c == '!' || c == '\'' ||
		(c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
