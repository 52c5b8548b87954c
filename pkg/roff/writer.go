// Package roff writes troff/groff control lines and text for man pages.
package roff

import (
	"bufio"
	"fmt"
	"io"

	mroff "github.com/muesli/roff"
)

// Font escapes switch the current font inside a text line.
// mroff has no roman constant and its PreviousFont (\fP) restores the prior
// font instead of selecting roman.
const (
	FontBold    = mroff.Bold
	FontItalic  = mroff.Italic
	FontRegular = `\fR`
)

// ZeroWidth is the zero-width escape. Placed before a leading '.', it stops
// roff from reading a text line as a control line.
const ZeroWidth = `\&`

// Macro names emitted by the converter.
const (
	MacroTitle         = "TH"
	MacroSection       = "SH"
	MacroSubsection    = "SS"
	MacroIndentStart   = "RS"
	MacroIndentEnd     = "RE"
	MacroParagraph     = "P"
	MacroNoHyphenation = "nh"
)

// Writer emits roff to an underlying io.Writer.
//
// Output is buffered; call Flush when done. The first write error is kept
// and every later call becomes a no-op, so callers can check Err once
// instead of after every line.
type Writer struct {
	out *bufio.Writer
	err error

	// midLine is set when the last byte written was not a newline.
	midLine bool
}

// NewWriter creates a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(w)}
}

// Macro writes a control line: '.', the macro name, each argument preceded
// by a single space, and a newline. Arguments are written as-is; callers
// escape them when needed. A control line always starts on a new line.
func (w *Writer) Macro(name string, args ...string) {
	w.EndLine()
	w.write(".")
	w.write(name)
	for _, arg := range args {
		w.write(" ")
		w.write(arg)
	}
	w.write("\n")
}

// Comment writes a roff comment line.
func (w *Writer) Comment(text string) {
	w.EndLine()
	w.write(`.\" `)
	w.write(text)
	w.write("\n")
}

// Text writes s verbatim.
func (w *Writer) Text(s string) {
	w.write(s)
}

// Rune writes a single codepoint verbatim.
func (w *Writer) Rune(char rune) {
	if w.err != nil {
		return
	}
	if _, err := w.out.WriteRune(char); err != nil {
		w.err = fmt.Errorf("write output: %w", err)
		return
	}
	w.midLine = char != '\n'
}

// Preamble writes the fixed header that precedes every generated page:
// generator comment, the quotation mark workaround and hyphenation disabled.
func (w *Writer) Preamble(generator string) {
	w.Comment("Generated by " + generator)
	w.Comment("Fix weird quotation marks:")
	w.Comment("http://bugs.debian.org/507673")
	w.Comment("http://lists.gnu.org/archive/html/groff/2009-02/msg00013.html")
	w.Text(".ie \\n(.g .ds Aq \\(aq\n")
	w.Text(".el       .ds Aq '\n")
	w.Comment("Disable hyphenation:")
	w.Macro(MacroNoHyphenation)
	w.Comment("Generated content:")
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

// Flush writes any buffered output and returns the first error seen.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.out.Flush(); err != nil {
		w.err = fmt.Errorf("flush output: %w", err)
	}
	return w.err
}

func (w *Writer) write(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.out.WriteString(s); err != nil {
		w.err = fmt.Errorf("write output: %w", err)
		return
	}
	if s != "" {
		w.midLine = s[len(s)-1] != '\n'
	}
}

// EndLine terminates a partially written text line.
func (w *Writer) EndLine() {
	if w.midLine {
		w.write("\n")
	}
}
