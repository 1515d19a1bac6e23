// Package lists provides the named cyclic lists the autofill engine
// recognizes: month and weekday names per locale and the user-configured
// custom list.
package lists

import (
	"golang.org/x/text/unicode/norm"
)

// Delimiter separates independent groups inside a custom list.
const Delimiter = `\`

// key normalizes a name for lookups so that composed and decomposed
// spellings of the same localized name compare equal.
func key(s string) string {
	return norm.NFC.String(s)
}

// NamedList is an immutable ordered list of names with O(1) lookup.
type NamedList struct {
	names []string
	index map[string]int
}

// NewNamedList creates a NamedList. Duplicate names resolve to their first
// position.
func NewNamedList(names ...string) *NamedList {
	l := &NamedList{
		names: append([]string(nil), names...),
		index: make(map[string]int, len(names)),
	}
	for i, n := range names {
		k := key(n)
		if _, dup := l.index[k]; !dup {
			l.index[k] = i
		}
	}
	return l
}

// Len returns the number of names.
func (l *NamedList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.names)
}

// At returns the name at position i.
func (l *NamedList) At(i int) string {
	return l.names[i]
}

// Index returns the position of name.
func (l *NamedList) Index(name string) (int, bool) {
	if l == nil {
		return 0, false
	}
	i, ok := l.index[key(name)]
	return i, ok
}

// Names returns a copy of the names.
func (l *NamedList) Names() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.names...)
}

// Member is the result of a custom list lookup.
type Member struct {
	// Index is the absolute position of the entry in the flat list.
	Index int
	// Begin is the position of the first member of the entry's group.
	Begin int
	// End is one past the position of the last member of the group.
	End int
}

// CustomList is a flat list of entries split into groups by Delimiter.
// Group bounds are computed once on construction.
type CustomList struct {
	entries []string
	index   map[string]int
	begin   []int
	end     []int
}

// NewCustomList creates a CustomList from its flat entries.
func NewCustomList(entries []string) *CustomList {
	c := &CustomList{
		entries: append([]string(nil), entries...),
		index:   make(map[string]int, len(entries)),
		begin:   make([]int, len(entries)),
		end:     make([]int, len(entries)),
	}

	begin := 0
	for i, e := range c.entries {
		if e == Delimiter {
			for j := begin; j < i; j++ {
				c.end[j] = i
			}
			begin = i + 1
			continue
		}
		c.begin[i] = begin
		k := key(e)
		if _, dup := c.index[k]; !dup {
			c.index[k] = i
		}
	}
	for j := begin; j < len(c.entries); j++ {
		c.end[j] = len(c.entries)
	}

	return c
}

// Len returns the number of entries including delimiters.
func (c *CustomList) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// At returns the entry at absolute position i.
func (c *CustomList) At(i int) string {
	return c.entries[i]
}

// Lookup finds name and the bounds of its group.
func (c *CustomList) Lookup(name string) (Member, bool) {
	if c == nil || name == Delimiter {
		return Member{}, false
	}
	i, ok := c.index[key(name)]
	if !ok {
		return Member{}, false
	}
	return Member{Index: i, Begin: c.begin[i], End: c.end[i]}, true
}

// Groups returns the non-empty groups of the list.
func (c *CustomList) Groups() [][]string {
	if c == nil {
		return nil
	}
	var groups [][]string
	var cur []string
	for _, e := range c.entries {
		if e == Delimiter {
			if len(cur) > 0 {
				groups = append(groups, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, e)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// ReferenceLists bundles every list the classifier consults. Values are
// immutable once built and may be shared.
type ReferenceLists struct {
	Months      *NamedList
	ShortMonths *NamedList
	Days        *NamedList
	ShortDays   *NamedList
	// Custom is the user-configured list. Nil disables custom members.
	Custom *CustomList
}

// WithCustom returns a copy of r that uses c as its custom list.
func (r *ReferenceLists) WithCustom(c *CustomList) *ReferenceLists {
	cp := *r
	cp.Custom = c
	return &cp
}
