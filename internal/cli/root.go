// Package cli provides the Cobra command structure for goscdoc.
package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the goscdoc command.
//
// now is the moment the process started; its date stamps the generated
// page. The command takes no arguments: anything on the command line,
// flags included, is a usage error.
func NewRootCommand(info BuildInfo, now time.Time) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "goscdoc",
		Short: "Generate roff man pages from scd documents",
		Long: `goscdoc reads an scd document on standard input and writes a roff man page
to standard output.

The first line of the document names the page and its section, for example
"goscdoc(1)". Lines starting with "#" or "##" become section headings, blank
lines separate paragraphs, and each leading tab opens an indented region.
Within text, *bold* and _underline_ switch fonts and a backslash escapes the
next character.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				printUsage(cmd)
				return ErrUsage
			}
			return runConvert(cmd, info, now)
		},
	}

	return rootCmd
}
