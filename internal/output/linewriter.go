package output

import (
	"fmt"
	"io"
)

// LineWriter writes space-separated tokens, starting a new line before a
// token that would overflow the maximum line length.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewLineWriter creates a new line writer. A maxLineLength of 0 never wraps.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength < 0 {
		maxLineLength = 0
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, adding a space separator if needed.
func (o *LineWriter) Write(s string) {
	if len(s) == 0 {
		return
	}
	if o.needsSpace {
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *LineWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *LineWriter) Err() error {
	return o.err
}

func (o *LineWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprint(o.w, s)
}
