package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/goscdoc/internal/logging"
	"github.com/yaklabco/goscdoc/internal/ui/pretty"
	"github.com/yaklabco/goscdoc/pkg/scdoc"
)

// Sentinel errors used to pick the exit code.
var (
	// ErrConversionFailed wraps a *scdoc.Error once it has been reported.
	ErrConversionFailed = errors.New("conversion failed")

	// ErrIO wraps failures reading stdin or writing stdout.
	ErrIO = errors.New("i/o error")
)

// stdinSource names standard input in diagnostics.
const stdinSource = "<stdin>"

// devVersion is the version string of untagged builds.
const devVersion = "dev"

func runConvert(cmd *cobra.Command, info BuildInfo, now time.Time) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	stdin := cmd.InOrStdin()
	if isTerminal(stdin) {
		logger.Warn("reading document from the terminal; end input with Ctrl-D")
	}

	opts := scdoc.Options{
		Date:      now,
		Generator: generatorName(info.Version),
	}
	logger.Debug("converting",
		logging.FieldInput, stdinSource,
		logging.FieldDate, opts.Date.Format(time.DateOnly),
		logging.FieldGenerator, opts.Generator,
	)

	err := scdoc.Convert(ctx, stdin, cmd.OutOrStdout(), opts)
	if err == nil {
		return nil
	}

	var convErr *scdoc.Error
	switch {
	case errors.As(err, &convErr):
		logger.Debug("conversion failed",
			logging.FieldLine, convErr.Pos.Line,
			logging.FieldColumn, convErr.Pos.Column,
			logging.FieldError, convErr.Msg,
		)
		stderr := cmd.ErrOrStderr()
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorModeFromEnv(), stderr))
		fmt.Fprint(stderr, styles.FormatError(stdinSource, convErr.Pos.Line, convErr.Pos.Column, convErr.Msg))
		return fmt.Errorf("%w: %w", ErrConversionFailed, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
}

// generatorName returns the name written into the page's generator comment.
func generatorName(version string) string {
	if version == "" || version == devVersion {
		return scdoc.DefaultGenerator
	}
	return scdoc.DefaultGenerator + " " + version
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
