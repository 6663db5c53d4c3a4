package slicer

import (
	"bufio"
	"io"

	"github.com/jaceys/slices/filter"
)

// RowSlicer emits the lines of its input whose 1-based line number is
// selected. Lines pass through verbatim, terminators included; an
// unterminated final line stays unterminated.
type RowSlicer struct {
	sel selection
}

// NewRowSlicer builds a RowSlicer for the given filter set. An empty
// set selects every line.
func NewRowSlicer(filters filter.FilterSet) *RowSlicer {
	return &RowSlicer{sel: newSelection(filters)}
}

// Slice copies the selected lines of r to w in a single forward pass,
// draining r to EOF and flushing w before returning.
func (s *RowSlicer) Slice(w io.Writer, r io.Reader) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	var index uint
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			index++
			if s.sel.matches(index) {
				if _, werr := bw.WriteString(line); werr != nil {
					return werr
				}
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
