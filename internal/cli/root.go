// Package cli provides the Cobra command structure for winnow.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/handleui/winnow/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root winnow command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var verbose bool
	var quiet bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "winnow",
		Short: "Extract structured diagnostics from raw build output",
		Long: `winnow reads the raw output of compilers and build tools and turns it
into structured diagnostics: file, position, severity, message, code.

Several dialects (GCC/Clang, GNU ld, MSVC, CMake, include-what-you-use)
run over every line of the stream; custom single-line patterns can be
added from a YAML matcher file. Results come out grouped by file, as
colored text or JSON, locally or over HTTP.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			switch {
			case verbose:
				logging.SetLevel("debug")
			case quiet:
				logging.SetLevel("error")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newMatchersCommand())
	rootCmd.AddCommand(newServeCommand(info))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
