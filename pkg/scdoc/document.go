package scdoc

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/yaklabco/goscdoc/pkg/roff"
)

// regionIndent is the width passed to the indentation region macro.
const regionIndent = "4"

// parseDocument runs the line loop after the preamble until end of input.
func (p *parser) parseDocument(ctx context.Context) error {
	level := 0

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("conversion cancelled: %w", err)
		}
		if err := p.out.Err(); err != nil {
			return err
		}

		depth, err := p.countIndent()
		if err != nil {
			return err
		}

		char, err := p.next()
		atEOF := errors.Is(err, io.EOF)
		if err != nil && !atEOF {
			return err
		}

		switch {
		case depth == level-1:
			p.out.Macro(roff.MacroIndentEnd)
			level = depth
		case depth == level+1:
			p.out.Macro(roff.MacroIndentStart, regionIndent)
			level = depth
		case depth == level:
		case atEOF || char == '\n':
			// Blank lines do not carry an indentation level.
		default:
			return p.fail(ErrIndentation, "(De)indented by an amount greater than 1")
		}

		if atEOF {
			p.closeRegions(level)
			p.out.EndLine()
			return nil
		}

		if level != 0 {
			p.in.Pushback(char)
			if err := p.parseText(); err != nil {
				return err
			}
			continue
		}

		switch char {
		case '#':
			err = p.parseHeading()
		case ' ':
			err = p.fail(ErrIndentation, "Tabs are required for indentation")
		case '\n':
			p.out.Macro(roff.MacroParagraph)
		default:
			p.in.Pushback(char)
			err = p.parseText()
		}
		if err != nil {
			return err
		}
	}
}

// countIndent consumes leading tabs and returns how many there were.
// The first other codepoint is pushed back.
func (p *parser) countIndent() (int, error) {
	depth := 0
	for {
		char, err := p.next()
		if errors.Is(err, io.EOF) {
			return depth, nil
		}
		if err != nil {
			return 0, err
		}
		if char != '\t' {
			p.in.Pushback(char)
			return depth, nil
		}
		depth++
	}
}

// closeRegions ends every indentation region still open at end of input.
func (p *parser) closeRegions(level int) {
	for ; level > 0; level-- {
		p.out.Macro(roff.MacroIndentEnd)
	}
}
