// Package runestream decodes a UTF-8 byte stream into codepoints with one
// codepoint of pushback and line/column tracking.
package runestream

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF8 is reported when the input contains a malformed byte sequence.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")

// DecodeError reports malformed input at a specific position.
type DecodeError struct {
	Pos Position
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at %s", ErrInvalidUTF8, e.Pos)
}

// Unwrap allows errors.Is(err, ErrInvalidUTF8).
func (e *DecodeError) Unwrap() error {
	return ErrInvalidUTF8
}

// Stream yields decoded codepoints from an io.Reader.
//
// End of input is reported as io.EOF and malformed UTF-8 as a *DecodeError,
// so callers can tell a truncated or corrupt document from a finished one.
// Once Next has returned an error it keeps returning the same error.
type Stream struct {
	src *bufio.Reader

	// next is where the next decoded codepoint will be; last is where the
	// most recently returned codepoint (or error) was.
	next Position
	last Position

	pending    rune
	pendingPos Position
	hasPending bool

	err error
}

// New creates a Stream reading from r. Input is validated as UTF-8 before
// decoding.
func New(r io.Reader) *Stream {
	return &Stream{
		src:  bufio.NewReader(transform.NewReader(r, encoding.UTF8Validator)),
		next: Position{Line: 1, Column: 1},
		last: Position{Line: 1, Column: 1},
	}
}

// Next returns the next codepoint.
func (s *Stream) Next() (rune, error) {
	if s.hasPending {
		s.hasPending = false
		s.last = s.pendingPos
		return s.pending, nil
	}

	if s.err != nil {
		s.last = s.next
		return 0, s.err
	}

	char, _, err := s.src.ReadRune()
	if err != nil {
		s.last = s.next
		switch {
		case errors.Is(err, io.EOF):
			s.err = io.EOF
		case errors.Is(err, encoding.ErrInvalidUTF8):
			s.err = &DecodeError{Pos: s.next}
		default:
			s.err = fmt.Errorf("read input: %w", err)
		}
		return 0, s.err
	}

	s.last = s.next
	s.next = s.next.advance(char)
	return char, nil
}

// Pushback returns char to the front of the stream so the following Next
// yields it again, at the position it was originally read from.
// Only one codepoint may be pending at a time.
func (s *Stream) Pushback(char rune) {
	if s.hasPending {
		panic("runestream: pushback with a codepoint already pending")
	}
	s.pending = char
	s.pendingPos = s.last
	s.hasPending = true
}

// Pos returns the position of the codepoint most recently returned by Next,
// or the position at which the most recent error occurred.
func (s *Stream) Pos() Position {
	return s.last
}
