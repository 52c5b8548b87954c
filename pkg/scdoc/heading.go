package scdoc

import (
	"errors"
	"io"
	"strings"

	"github.com/yaklabco/goscdoc/pkg/roff"
)

// parseHeading is entered after the first '#' of a line. Heading text is
// copied verbatim: escapes and format toggles are not interpreted.
func (p *parser) parseHeading() error {
	level := 1
	for {
		char, err := p.next()
		if errors.Is(err, io.EOF) {
			return p.fail(ErrUnexpectedEOF, "Unexpected EOF")
		}
		if err != nil {
			return err
		}
		if char == ' ' {
			break
		}
		if char != '#' {
			return p.fail(ErrHeading, "Invalid start of heading (probably needs a space)")
		}
		level++
	}

	var macro string
	switch level {
	case 1:
		macro = roff.MacroSection
	case 2:
		macro = roff.MacroSubsection
	default:
		return p.fail(ErrHeading, "Only headings up to two levels deep are permitted")
	}

	text, err := p.restOfLine()
	if err != nil {
		return err
	}
	p.out.Macro(macro, text)
	return nil
}

// restOfLine consumes codepoints through the next newline or end of input
// and returns them without the newline.
func (p *parser) restOfLine() (string, error) {
	var line strings.Builder
	for {
		char, err := p.next()
		if errors.Is(err, io.EOF) {
			return line.String(), nil
		}
		if err != nil {
			return "", err
		}
		if char == '\n' {
			return line.String(), nil
		}
		line.WriteRune(char)
	}
}
