// Package main is the entry point for the flint CLI.
package main

import (
	"errors"
	"os"

	"github.com/flintlabs/flint/internal/cli"
	"github.com/flintlabs/flint/internal/logging"
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
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return cli.ExitOK
	case errors.Is(err, cli.ErrIssuesFound):
		// Findings were already reported; the error only carries the
		// exit code.
		return cli.ExitIssues
	default:
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitError
	}
}
