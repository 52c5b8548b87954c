package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goscdoc/internal/ui/pretty"
)

// ErrUsage is returned when the command is invoked with arguments.
var ErrUsage = errors.New("goscdoc takes no arguments")

// Placeholders shown in the usage line.
const (
	usageInput  = "input.scd"
	usageOutput = "output.roff"
)

// printUsage writes the usage line to the command's error stream.
func printUsage(cmd *cobra.Command) {
	stderr := cmd.ErrOrStderr()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorModeFromEnv(), stderr))
	fmt.Fprint(stderr, styles.FormatUsage(cmd.Name(), usageInput, usageOutput))
}
