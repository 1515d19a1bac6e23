// Package sheetfill infers the pattern in a range of cells and continues it
// into an adjacent range.
package sheetfill

import (
	"log/slog"

	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/lists"
)

// Options configures autofill behavior.
type Options struct {
	// Lists holds the month, weekday and custom lists used to classify
	// text. If nil, the English lists without a custom list are used.
	Lists *lists.ReferenceLists
	// Logger receives debug traces of the pattern search. If nil, nothing
	// is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default autofill options.
func DefaultOptions() Options {
	return Options{
		Lists: lists.Default(),
	}
}

func (o Options) referenceLists() *lists.ReferenceLists {
	if o.Lists != nil {
		return o.Lists
	}
	return lists.Default()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
