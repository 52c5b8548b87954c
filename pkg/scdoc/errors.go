package scdoc

import (
	"errors"
	"fmt"

	"github.com/yaklabco/goscdoc/pkg/runestream"
)

// Error categories. Every *Error wraps exactly one of these.
var (
	// ErrPreamble marks a missing or malformed "name(section)" first line.
	ErrPreamble = errors.New("invalid preamble")

	// ErrHeading marks a heading without a separating space or deeper than two levels.
	ErrHeading = errors.New("invalid heading")

	// ErrIndentation marks an indentation jump of more than one level or
	// spaces used where tabs are required.
	ErrIndentation = errors.New("invalid indentation")

	// ErrFormatting marks nested inline formatting.
	ErrFormatting = errors.New("invalid inline formatting")

	// ErrUnexpectedEOF marks input that ends in the middle of a construct.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrInvalidUTF8 marks a malformed byte sequence in the input.
	ErrInvalidUTF8 = runestream.ErrInvalidUTF8
)

// Error is a fatal conversion error at a position in the input.
type Error struct {
	// Pos is the 1-based line and column of the offending codepoint.
	Pos runestream.Position

	// Msg is the human-readable description.
	Msg string

	// Kind is the error category sentinel.
	Kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("error at %s: %s", e.Pos, e.Msg)
}

// Unwrap returns the category sentinel.
func (e *Error) Unwrap() error {
	return e.Kind
}
