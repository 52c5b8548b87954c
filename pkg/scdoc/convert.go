// Package scdoc converts scd documents into roff man pages.
//
// An scd document starts with a "name(section)" line, followed by headings
// ("# NAME", "## Subsection"), paragraphs separated by blank lines, and
// tab-indented blocks. Inside text, *bold* and _underline_ toggle fonts and
// a backslash escapes the next character.
//
// Conversion is a single forward pass with one codepoint of lookahead.
// Output is written as it is produced; the first error ends the run and
// whatever was already written is kept.
package scdoc

import (
	"context"
	"errors"
	"io"

	"github.com/yaklabco/goscdoc/pkg/roff"
	"github.com/yaklabco/goscdoc/pkg/runestream"
)

// Convert reads an scd document from r and writes the man page to w.
//
// Conversion failures are returned as *Error. Errors reading r or writing w
// are returned wrapped.
func Convert(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	opts = opts.withDefaults()

	p := &parser{
		in:   runestream.New(r),
		out:  roff.NewWriter(w),
		date: opts.Date.Format(dateLayout),
	}

	p.out.Preamble(opts.Generator)

	err := p.parsePreamble()
	if err == nil {
		err = p.parseDocument(ctx)
	}

	// Partial output is flushed even when conversion failed.
	flushErr := p.out.Flush()
	if err != nil {
		return err
	}
	return flushErr
}

// parser holds the state of one conversion run.
type parser struct {
	in     *runestream.Stream
	out    *roff.Writer
	format format
	date   string
}

// next returns the next codepoint. End of input is returned as io.EOF for the
// caller to interpret; malformed input becomes an *Error.
func (p *parser) next() (rune, error) {
	char, err := p.in.Next()
	if err == nil || errors.Is(err, io.EOF) {
		return char, err
	}
	if errors.Is(err, runestream.ErrInvalidUTF8) {
		return 0, p.fail(ErrInvalidUTF8, "Invalid UTF-8 sequence")
	}
	return 0, err
}

// fail builds an *Error at the position of the last codepoint read.
func (p *parser) fail(kind error, msg string) error {
	return &Error{Pos: p.in.Pos(), Msg: msg, Kind: kind}
}
