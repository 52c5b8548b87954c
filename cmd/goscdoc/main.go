// Package main is the entry point for the goscdoc CLI.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/yaklabco/goscdoc/internal/cli"
	"github.com/yaklabco/goscdoc/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// The page date is taken once, before any input is read.
	now := time.Now()

	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	logger := logging.New(cli.LogLevelFromEnv())
	logging.SetDefault(logger)
	ctx := logging.WithLogger(context.Background(), logger)

	rootCmd := cli.NewRootCommand(info, now)

	err := rootCmd.ExecuteContext(ctx)
	// Usage and conversion errors have already been reported on stderr.
	if err != nil && !errors.Is(err, cli.ErrUsage) && !errors.Is(err, cli.ErrConversionFailed) {
		logger.Error("command failed",
			logging.FieldError, err,
			logging.FieldVersion, info.Version,
			logging.FieldCommit, info.Commit,
			logging.FieldBuilt, info.Date,
		)
	}

	return cli.ExitCode(err)
}
