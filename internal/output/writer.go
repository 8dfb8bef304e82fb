// Package output renders positions, move lists and perft reports.
package output

import (
	"fmt"
	"io"
)

// DefaultLineLength is the wrap width used when none is given.
const DefaultLineLength = 80

// OutputWriter writes space-separated tokens, breaking lines before they
// would exceed the maximum length.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter wraps w. A non-positive length selects DefaultLineLength.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write emits s after a separator, or after a line break when s would not fit.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything has been written to it.
func (o *OutputWriter) NewLine() {
	if o.lineLength == 0 {
		return
	}
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}
