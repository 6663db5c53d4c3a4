// Package filter implements the index expressions that rowslc and
// colslc use to select rows or columns of their input.
//
// An expression names a set of 1-based positions:
//
//	N    the single position N
//	N:M  every position from N through M, inclusive
//	N:   every position from N onwards
//	:M   every position from 1 through M
//	:    every position
//
// Bounds must be positive integers; position numbering starts at 1.
package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFilter means an expression does not match the grammar:
	// empty, non-numeric, zero or negative, or too many colons.
	ErrInvalidFilter = errors.New("invalid filter expression")

	// ErrInvalidRange means a well-formed N:M expression with N > M.
	ErrInvalidRange = errors.New("invalid filter range")
)

// Filter is one inclusive range over 1-based positions. A zero bound
// means the range is unbounded on that side; valid bounds are always
// at least 1.
type Filter struct {
	lower uint
	upper uint
}

// Parse converts a single index expression into a Filter. It returns
// ErrInvalidFilter or ErrInvalidRange wrapping the offending token.
func Parse(expr string) (Filter, error) {
	lo, hi, found := strings.Cut(expr, ":")
	if !found {
		n, err := parseBound(expr)
		if err != nil {
			return Filter{}, err
		}
		return Filter{lower: n, upper: n}, nil
	}

	if strings.Contains(hi, ":") {
		return Filter{}, fmt.Errorf("%w: %q", ErrInvalidFilter, expr)
	}

	var f Filter
	if lo != "" {
		n, err := parseBound(lo)
		if err != nil {
			return Filter{}, err
		}
		f.lower = n
	}
	if hi != "" {
		n, err := parseBound(hi)
		if err != nil {
			return Filter{}, err
		}
		f.upper = n
	}

	if f.lower != 0 && f.upper != 0 && f.lower > f.upper {
		return Filter{}, fmt.Errorf("%w: %q", ErrInvalidRange, expr)
	}
	return f, nil
}

func parseBound(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
	return uint(n), nil
}

// Match reports whether the 1-based position falls within the filter's
// inclusive range.
func (f Filter) Match(position uint) bool {
	if f.lower != 0 && position < f.lower {
		return false
	}
	if f.upper != 0 && position > f.upper {
		return false
	}
	return true
}

// FilterSet is the union of zero or more Filters. Filters are kept in
// the order given; overlapping or duplicate filters are accepted and
// simply both contribute to the union.
//
// An empty FilterSet matches nothing through Apply. Callers that want
// the conventional "no filters means select everything" behavior must
// check IsEmpty and bypass Apply entirely.
type FilterSet struct {
	filters []Filter
}

// NewSet builds a FilterSet that owns the given filters.
func NewSet(filters ...Filter) FilterSet {
	return FilterSet{filters: filters}
}

// ParseSet parses each expression in turn and collects the results
// into a FilterSet. The first invalid expression aborts the whole set.
func ParseSet(exprs ...string) (FilterSet, error) {
	filters := make([]Filter, 0, len(exprs))
	for _, expr := range exprs {
		f, err := Parse(expr)
		if err != nil {
			return FilterSet{}, err
		}
		filters = append(filters, f)
	}
	return NewSet(filters...), nil
}

// IsEmpty reports whether the set contains no filters.
func (s FilterSet) IsEmpty() bool {
	return len(s.filters) == 0
}

// Apply reports whether the 1-based position is matched by at least
// one filter in the set.
func (s FilterSet) Apply(position uint) bool {
	for _, f := range s.filters {
		if f.Match(position) {
			return true
		}
	}
	return false
}
