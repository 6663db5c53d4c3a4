// Package slicer implements the streaming row and column selection
// behind the rowslc and colslc commands.
package slicer

import "github.com/jaceys/slices/filter"

type mode int

const (
	selectAll mode = iota
	selectMatching
)

// selection fixes, at construction time, whether every position is
// emitted or only those matched by the filter set. This keeps the
// empty-set convention ("no filters selects everything") out of the
// per-position predicate.
type selection struct {
	mode    mode
	filters filter.FilterSet
}

func newSelection(filters filter.FilterSet) selection {
	if filters.IsEmpty() {
		return selection{mode: selectAll}
	}
	return selection{mode: selectMatching, filters: filters}
}

func (s selection) all() bool {
	return s.mode == selectAll
}

// matches reports whether the 1-based position is selected.
func (s selection) matches(position uint) bool {
	return s.mode == selectAll || s.filters.Apply(position)
}
