package sheetfill

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/formula"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/lists"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// cellPos is a 1-based grid coordinate.
type cellPos struct {
	col, row int
}

// line is one row or column of a fill. Destinations are ordered outward
// from the source: dests[0] is adjacent to it.
type line struct {
	sources []models.Cell
	seqs    []Sequence
	dests   []cellPos
	forward bool
}

// position maps destination k to its position relative to the first source
// cell: forward fills continue after the last source, backward fills count
// down from -1.
func (l line) position(k int) int {
	if l.forward {
		return len(l.sources) + k
	}
	return -(k + 1)
}

func floorDiv(a, m int) int {
	return (a - wrap(a, m)) / m
}

// fillInterval writes the destinations of l by extrapolating iv.
func fillInterval(g Grid, l line, iv Interval) error {
	for k, dst := range l.dests {
		pos := l.position(k)
		s := wrap(pos, iv.Step)
		block := floorDiv(pos, iv.Step)
		src := l.sources[s]
		seq := l.seqs[s]

		var text string
		switch {
		case seq.IsFormula():
			text = formula.Shift(src.Text, dst.col-src.Col, dst.row-src.Row)
		case iv.Continuous:
			v, _ := seq.numericValue()
			text = formatNumber(v + float64(block)*iv.Deltas[s].At(0))
		case l.forward:
			text = seq.Successor(block, iv.Deltas[s])
		default:
			text = seq.Predecessor(-block, iv.Deltas[s])
		}

		if err := writeText(g, src, dst, text); err != nil {
			return err
		}
		if err := g.CopyFormat(src.Col, src.Row, dst.col, dst.row); err != nil {
			return err
		}
		if iv.Continuous {
			if err := g.SetFormatType(dst.col, dst.row, src.Format); err != nil {
				return err
			}
		}
	}
	return nil
}

// fillCopy writes the destinations of l when no interval was found.
func fillCopy(g Grid, l line, ref *lists.ReferenceLists) error {
	n := len(l.sources)
	for k, dst := range l.dests {
		src := l.sources[wrap(l.position(k), n)]
		text := copyText(src, dst, n, k, l.forward, ref)

		if err := writeText(g, src, dst, text); err != nil {
			return err
		}
		if err := g.CopyFormat(src.Col, src.Row, dst.col, dst.row); err != nil {
			return err
		}
	}
	return nil
}

// writeText stores text derived from src. Text from a text cell stays text
// on grids that keep cell types.
func writeText(g Grid, src models.Cell, dst cellPos, text string) error {
	if src.Numeric || src.Formula {
		return g.SetText(dst.col, dst.row, text)
	}
	if c, ok := g.(ValueCopier); ok && text == src.Text {
		return c.CopyValue(src.Col, src.Row, dst.col, dst.row)
	}
	if w, ok := g.(StringWriter); ok {
		return w.SetString(dst.col, dst.row, text)
	}
	return g.SetText(dst.col, dst.row, text)
}

// copyText derives the text of destination k (0 = adjacent) from its
// source cell. n is the number of source cells in the line.
func copyText(src models.Cell, dst cellPos, n, k int, forward bool, ref *lists.ReferenceLists) string {
	sign := 1
	if !forward {
		sign = -1
	}
	steps := sign * (k + 1)

	if src.Formula || strings.HasPrefix(src.Text, "=") {
		return formula.Shift(src.Text, dst.col-src.Col, dst.row-src.Row)
	}

	if n == 1 && src.Numeric && !src.Date && !src.Time {
		factor := src.Value
		if src.Format == models.FormatPercent {
			factor = 0.01
		}
		return formatNumber(src.Value + float64(steps)*factor)
	}

	if n == 1 && !src.Numeric {
		if name, ok := cycleName(src.Text, steps, ref); ok {
			return name
		}
	}

	if !src.Numeric {
		if text, ok := bumpEmbeddedInteger(src.Text, sign*(k/n+1)); ok {
			return text
		}
	}

	return src.Text
}

// cycleName moves text by steps positions around the first named list
// that contains it.
func cycleName(text string, steps int, ref *lists.ReferenceLists) (string, bool) {
	if ref == nil {
		return "", false
	}
	for _, l := range []*lists.NamedList{ref.Months, ref.ShortMonths, ref.Days, ref.ShortDays} {
		if i, ok := l.Index(text); ok {
			return l.At(wrap(i+steps, l.Len())), true
		}
	}
	if m, ok := ref.Custom.Lookup(text); ok {
		size := m.End - m.Begin
		return ref.Custom.At(m.Begin + wrap(m.Index-m.Begin+steps, size)), true
	}
	return "", false
}

// bumpEmbeddedInteger adds by to the only run of digits in text.
func bumpEmbeddedInteger(text string, by int) (string, bool) {
	runs := digitRun.FindAllStringIndex(text, 2)
	if len(runs) != 1 {
		return "", false
	}
	start, end := runs[0][0], runs[0][1]
	num, err := strconv.Atoi(text[start:end])
	if err != nil {
		return "", false
	}
	return text[:start] + strconv.Itoa(num+by) + text[end:], true
}
