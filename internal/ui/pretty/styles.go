// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains the styled renderers for CLI output on stderr.
type Styles struct {
	// Usage message
	Heading     lipgloss.Style
	Command     lipgloss.Style
	Placeholder lipgloss.Style

	// Conversion errors
	Error    lipgloss.Style
	Location lipgloss.Style
	Message  lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Command:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Placeholder: lipgloss.NewStyle().Italic(true),

		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Location: lipgloss.NewStyle().Bold(true),
		Message:  lipgloss.NewStyle(),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Heading:     plain,
		Command:     plain,
		Placeholder: plain,
		Error:       plain,
		Location:    plain,
		Message:     plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
