package runestream

import "fmt"

// Position represents a 1-based line and column in the input.
// Columns count codepoints, not bytes.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// String formats the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// advance returns the position that follows a codepoint read at p.
func (p Position) advance(r rune) Position {
	if r == '\n' {
		return Position{Line: p.Line + 1, Column: 1}
	}
	return Position{Line: p.Line, Column: p.Column + 1}
}
