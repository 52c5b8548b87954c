package scdoc

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/goscdoc/pkg/roff"
)

const (
	minSection = 1
	maxSection = 9
)

// parsePreamble reads the mandatory "name(section)" line and emits the
// title macro. Codepoints other than alphanumerics and the parenthesized
// section are ignored.
func (p *parser) parsePreamble() error {
	var name strings.Builder
	section := 0

	for {
		char, err := p.next()
		if errors.Is(err, io.EOF) {
			return p.fail(ErrPreamble, "Expected preamble")
		}
		if err != nil {
			return err
		}

		switch {
		case isAlnum(char):
			name.WriteRune(char)
		case char == '(':
			section, err = p.parseSection()
			if err != nil {
				return err
			}
		case char == '\n':
			if name.Len() == 0 {
				return p.fail(ErrPreamble, "Expected preamble")
			}
			if section == 0 {
				return p.fail(ErrPreamble, "Expected manual section")
			}
			p.out.Macro(roff.MacroTitle, name.String(), strconv.Itoa(section), p.date)
			return nil
		}
	}
}

// parseSection reads the digits after '(' up to and including ')'.
func (p *parser) parseSection() (int, error) {
	var digits strings.Builder

	for {
		char, err := p.next()
		if errors.Is(err, io.EOF) {
			return 0, p.fail(ErrUnexpectedEOF, "Expected manual section")
		}
		if err != nil {
			return 0, err
		}

		switch {
		case isDigit(char):
			digits.WriteRune(char)
		case char == ')':
			if digits.Len() == 0 {
				return 0, p.fail(ErrPreamble, "Expected manual section")
			}
			section, convErr := strconv.Atoi(digits.String())
			if convErr != nil || section < minSection || section > maxSection {
				return 0, p.fail(ErrPreamble, "Expected section between 1 and 9")
			}
			return section, nil
		default:
			return 0, p.fail(ErrPreamble, "Expected digit or )")
		}
	}
}

func isDigit(char rune) bool {
	return char >= '0' && char <= '9'
}

func isAlnum(char rune) bool {
	return isDigit(char) || (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
}
