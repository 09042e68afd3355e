package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handleui/winnow/config"
)

// ErrInvalidMatchers is returned by matchers --strict when at least one
// configured pattern does not compile.
var ErrInvalidMatchers = errors.New("invalid matcher patterns")

func newMatchersCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "matchers <file.yaml>",
		Short: "Validate a matcher configuration file",
		Long: `Validate a matcher configuration file.

Lists every configured matcher and flags patterns that do not compile.
A broken pattern is not fatal for the parse pipeline (the matcher simply
never fires); use --strict to fail on one anyway, e.g. in CI.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := config.Load(args[0])
			if err != nil {
				return fmt.Errorf("loading matchers: %w", err)
			}

			w := cmd.OutOrStdout()
			broken := 0
			for _, res := range config.Lint(configs) {
				if res.Err != nil {
					broken++
					_, _ = fmt.Fprintf(w, "✖ %s: %v\n", res.Name, res.Err)
					continue
				}
				_, _ = fmt.Fprintf(w, "✓ %s\n", res.Name)
			}
			_, _ = fmt.Fprintf(w, "\nchecked %d matchers: %d broken\n", len(configs), broken)

			if strict && broken > 0 {
				return ErrInvalidMatchers
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false,
		"exit nonzero when any pattern does not compile")

	return cmd
}
