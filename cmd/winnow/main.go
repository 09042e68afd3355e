// Package main is the entry point for the winnow CLI.
package main

import (
	"errors"
	"os"

	"github.com/handleui/winnow/internal/cli"
	"github.com/handleui/winnow/internal/logging"
)

// Build-time variables set via ldflags.
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

	if err := rootCmd.Execute(); err != nil {
		// Sentinel errors only carry the exit code; the findings were
		// already written to stdout.
		if !errors.Is(err, cli.ErrDiagnosticsFound) && !errors.Is(err, cli.ErrInvalidMatchers) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return 1
	}

	return cli.ExitSuccess
}
