package pretty

import (
	"fmt"
	"strings"
)

// FormatError formats a positioned conversion error as
// "source:line:column  error  message".
func (s *Styles) FormatError(source string, line, column int, message string) string {
	location := s.Location.Render(fmt.Sprintf("%s:%d:%d", source, line, column))
	return fmt.Sprintf("%s  %s  %s\n", location, s.Error.Render("error"), s.Message.Render(message))
}

// FormatUsage formats the one-line usage message: the command reads a
// document on stdin and writes the page to stdout.
func (s *Styles) FormatUsage(command, input, output string) string {
	var builder strings.Builder
	builder.WriteString(s.Heading.Render("Usage:"))
	builder.WriteString(" ")
	builder.WriteString(s.Command.Render(command))
	builder.WriteString(" < ")
	builder.WriteString(s.Placeholder.Render(input))
	builder.WriteString(" > ")
	builder.WriteString(s.Placeholder.Render(output))
	builder.WriteString("\n")
	return builder.String()
}
