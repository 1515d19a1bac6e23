package sheetfill

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/formula"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/lists"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
)

// maxExactInt is the largest magnitude float64 holds every integer up to.
const maxExactInt = 1 << 53

// Item is one typed piece of a cell's content.
type Item struct {
	Kind Kind
	// Int is the payload of KindInteger.
	Int int64
	// Float is the payload of KindFloat, KindDate and KindTime.
	Float float64
	// Text is the payload of KindString, the relative encoding of a
	// KindFormula, and the name of the named kinds.
	Text string
	// Index is the position in the named list. For KindCustom it is the
	// absolute position in the flat custom list.
	Index int
	// Begin and End bound the custom list group of a KindCustom item.
	Begin, End int

	names  *lists.NamedList
	custom *lists.CustomList
}

// Sequence is the typed decomposition of one cell. Empty cells have no
// items.
type Sequence []Item

// Classify turns a cell snapshot into its Sequence. A nil ref uses the
// default lists.
func Classify(cell models.Cell, ref *lists.ReferenceLists) Sequence {
	if cell.IsEmpty() {
		return Sequence{}
	}
	if ref == nil {
		ref = lists.Default()
	}
	return Sequence{classifyItem(cell, ref)}
}

func classifyItem(cell models.Cell, ref *lists.ReferenceLists) Item {
	if cell.Formula {
		return Item{Kind: KindFormula, Text: formula.Encode(cell.Text, cell.Col, cell.Row)}
	}

	if cell.Numeric {
		v := cell.Value
		switch {
		case cell.Date:
			return Item{Kind: KindDate, Float: v}
		case cell.Time:
			return Item{Kind: KindTime, Float: v}
		case v == math.Trunc(v) && math.Abs(v) <= maxExactInt:
			return Item{Kind: KindInteger, Int: int64(v)}
		default:
			return Item{Kind: KindFloat, Float: v}
		}
	}

	text := cell.Text
	named := []struct {
		kind Kind
		list *lists.NamedList
	}{
		{KindMonth, ref.Months},
		{KindShortMonth, ref.ShortMonths},
		{KindDay, ref.Days},
		{KindShortDay, ref.ShortDays},
	}
	for _, n := range named {
		if i, ok := n.list.Index(text); ok {
			return Item{Kind: n.kind, Text: text, Index: i, names: n.list}
		}
	}

	if m, ok := ref.Custom.Lookup(text); ok {
		return Item{
			Kind:   KindCustom,
			Text:   text,
			Index:  m.Index,
			Begin:  m.Begin,
			End:    m.End,
			custom: ref.Custom,
		}
	}

	if strings.HasPrefix(text, "=") {
		return Item{Kind: KindFormula, Text: formula.Encode(text, cell.Col, cell.Row)}
	}

	return Item{Kind: KindString, Text: text}
}

// Successor returns the text of the item advanced n times by delta.
func (it Item) Successor(n int, delta float64) string {
	switch it.Kind {
	case KindInteger:
		return strconv.FormatInt(it.Int+int64(n)*int64(math.Floor(delta)), 10)
	case KindFloat, KindDate, KindTime:
		return formatNumber(it.Float + float64(n)*delta)
	case KindMonth, KindShortMonth, KindDay, KindShortDay:
		size := it.names.Len()
		return it.names.At(wrap(it.Index+n*int(math.Floor(delta)), size))
	case KindCustom:
		size := it.End - it.Begin
		rel := wrap(it.Index-it.Begin+n*int(math.Floor(delta)), size)
		return it.custom.At(it.Begin + rel)
	default:
		return it.Text
	}
}

// Predecessor returns the text of the item moved back n times by delta.
func (it Item) Predecessor(n int, delta float64) string {
	return it.Successor(-n, delta)
}

// IsFormula reports whether the sequence holds a formula.
func (s Sequence) IsFormula() bool {
	return len(s) > 0 && s[0].Kind == KindFormula
}

// Successor concatenates the successors of every item.
func (s Sequence) Successor(n int, delta DeltaSequence) string {
	var b strings.Builder
	for i, it := range s {
		b.WriteString(it.Successor(n, delta.At(i)))
	}
	return b.String()
}

// Predecessor concatenates the predecessors of every item.
func (s Sequence) Predecessor(n int, delta DeltaSequence) string {
	var b strings.Builder
	for i, it := range s {
		b.WriteString(it.Predecessor(n, delta.At(i)))
	}
	return b.String()
}

// Matches reports whether the delta from s to o equals delta.
func (s Sequence) Matches(o Sequence, delta DeltaSequence) bool {
	return ComputeDelta(s, o).Equal(delta)
}

// numericValue returns the value of a single-item Integer, Float, Date or
// Time sequence.
func (s Sequence) numericValue() (float64, bool) {
	if len(s) != 1 {
		return 0, false
	}
	switch s[0].Kind {
	case KindInteger:
		return float64(s[0].Int), true
	case KindFloat, KindDate, KindTime:
		return s[0].Float, true
	}
	return 0, false
}

// wrap maps i into [0, size).
func wrap(i, size int) int {
	if size <= 0 {
		return 0
	}
	r := i % size
	if r < 0 {
		r += size
	}
	return r
}

// formatNumber renders v with spreadsheet display precision (15
// significant digits) and no exponent.
func formatNumber(v float64) string {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 15, 64), 64)
	if err != nil {
		rounded = v
	}
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
