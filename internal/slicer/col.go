package slicer

import (
	"bufio"
	"io"
	"strings"

	"github.com/jaceys/slices/filter"
)

// ColSlicer emits, for each line of its input, the whitespace-delimited
// fields whose 1-based index is selected, rejoined with single spaces
// and terminated with a newline. With an empty filter set lines pass
// through verbatim instead, original spacing preserved.
//
// Fields are split on whitespace runs only; there is no quoting or
// delimiter configuration, so a column whose value contains spaces
// ("2 days ago") counts as several fields.
type ColSlicer struct {
	sel selection
}

// NewColSlicer builds a ColSlicer for the given filter set. An empty
// set passes every line through unmodified.
func NewColSlicer(filters filter.FilterSet) *ColSlicer {
	return &ColSlicer{sel: newSelection(filters)}
}

// Slice copies the selected fields of each line of r to w in a single
// forward pass, draining r to EOF and flushing w before returning.
func (s *ColSlicer) Slice(w io.Writer, r io.Reader) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if werr := s.sliceLine(bw, line); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

func (s *ColSlicer) sliceLine(bw *bufio.Writer, line string) error {
	if s.sel.all() {
		_, err := bw.WriteString(line)
		return err
	}

	fields := strings.Fields(line)
	selected := make([]string, 0, len(fields))
	for i, field := range fields {
		if s.sel.matches(uint(i) + 1) {
			selected = append(selected, field)
		}
	}

	if _, err := bw.WriteString(strings.Join(selected, " ")); err != nil {
		return err
	}
	return bw.WriteByte('\n')
}
