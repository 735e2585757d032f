package bitbar

import (
	"fmt"
	"io"
)

// Renderer turns a line into what is actually written. The default renderer
// emits the host protocol; the preview renderer styles lines for a terminal.
type Renderer func(Line) string

// Printer writes plugin output lines to a writer
type Printer struct {
	w      io.Writer
	render Renderer
	err    error
}

// NewPrinter creates a printer emitting the host protocol to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, render: Line.String}
}

// WithRenderer returns a copy of the printer using r to format lines
func (p *Printer) WithRenderer(r Renderer) *Printer {
	return &Printer{w: p.w, render: r}
}

// Line writes text with the given attributes
func (p *Printer) Line(text string, attrs ...Attr) {
	p.Write(Line{Text: text, Attrs: attrs})
}

// Separator writes a section break
func (p *Printer) Separator() {
	p.Write(Line{Text: Separator})
}

// Write writes a prepared line. The first write error is kept and returned by Err;
// later writes are skipped.
func (p *Printer) Write(l Line) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintln(p.w, p.render(l)); err != nil {
		p.err = fmt.Errorf("failed to write output: %w", err)
	}
}

// WriteAll writes a batch of lines
func (p *Printer) WriteAll(lines []Line) {
	for _, l := range lines {
		p.Write(l)
	}
}

// Err returns the first write error, if any
func (p *Printer) Err() error {
	return p.err
}
