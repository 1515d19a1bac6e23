package sheetfill

// Kind is the type assigned to one item of a cell's content.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindString
	KindFormula
	KindMonth
	KindShortMonth
	KindDay
	KindShortDay
	KindCustom
	KindDate
	KindTime
)

var kindNames = map[Kind]string{
	KindInteger:    "integer",
	KindFloat:      "float",
	KindString:     "string",
	KindFormula:    "formula",
	KindMonth:      "month",
	KindShortMonth: "short-month",
	KindDay:        "day",
	KindShortDay:   "short-day",
	KindCustom:     "custom",
	KindDate:       "date",
	KindTime:       "time",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Named reports whether the kind cycles through a named list.
func (k Kind) Named() bool {
	switch k {
	case KindMonth, KindShortMonth, KindDay, KindShortDay, KindCustom:
		return true
	}
	return false
}

// continuous reports whether the kind takes part in the homogeneous
// numeric interval search.
func (k Kind) continuous() bool {
	return k == KindFloat || k == KindDate || k == KindTime
}
