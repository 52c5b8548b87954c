package scdoc

import (
	"errors"
	"io"

	"github.com/yaklabco/goscdoc/pkg/roff"
)

// format is the active inline font. At most one is active at a time.
type format uint8

const (
	formatNone format = iota
	formatBold
	formatUnderline
)

func (f format) escape() string {
	switch f {
	case formatBold:
		return roff.FontBold
	case formatUnderline:
		return roff.FontItalic
	default:
		return roff.FontRegular
	}
}

// parseText copies one run of text up to and including the newline,
// translating escapes, format toggles and a leading period.
// The active format carries over to the next run.
func (p *parser) parseText() error {
	for first := true; ; first = false {
		char, err := p.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch char {
		case '\\':
			char, err = p.next()
			if errors.Is(err, io.EOF) {
				return p.fail(ErrUnexpectedEOF, "Unexpected EOF")
			}
			if err != nil {
				return err
			}
			if char == '\\' {
				p.out.Text(`\\`)
			} else {
				p.out.Rune(char)
			}
		case '*':
			if err := p.toggleFormat(formatBold); err != nil {
				return err
			}
		case '_':
			if err := p.toggleFormat(formatUnderline); err != nil {
				return err
			}
		case '.':
			if first {
				p.out.Text(roff.ZeroWidth)
			}
			p.out.Rune(char)
		default:
			p.out.Rune(char)
		}

		if char == '\n' {
			return nil
		}
	}
}

func (p *parser) toggleFormat(f format) error {
	switch p.format {
	case formatNone:
		p.out.Text(f.escape())
		p.format = f
	case f:
		p.out.Text(roff.FontRegular)
		p.format = formatNone
	default:
		return p.fail(ErrFormatting, "Cannot nest inline formatting.")
	}
	return nil
}
