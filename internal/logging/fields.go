// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError = "error"
	FieldInput = "input"

	// Conversion fields.
	FieldDate      = "date"
	FieldGenerator = "generator"
	FieldLine      = "line"
	FieldColumn    = "column"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
