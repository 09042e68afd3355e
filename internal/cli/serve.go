package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/handleui/winnow/config"
	"github.com/handleui/winnow/dialects/matcher"
	"github.com/handleui/winnow/internal/service"
)

func newServeCommand(info BuildInfo) *cobra.Command {
	var addr string
	var matchersPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP parse service",
		Long: `Run the HTTP parse service.

POST /parse accepts {"logs": "...", "matchers": [...]} and responds with
grouped diagnostics plus stream statistics. GET /health reports service
status. Matchers loaded with --matchers apply to every request, before
any matchers the request itself carries.

The server shuts down gracefully on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var configs []matcher.Config
			if matchersPath != "" {
				var err error
				configs, err = config.Load(matchersPath)
				if err != nil {
					return fmt.Errorf("loading matchers: %w", err)
				}
			}

			baseCtx := cmd.Context()
			if baseCtx == nil {
				baseCtx = context.Background()
			}
			ctx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return service.Run(ctx, service.Config{
				Addr:     addr,
				Version:  info.Version,
				Matchers: configs,
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&matchersPath, "matchers", "",
		"YAML file with custom matcher patterns applied to every request")

	return cmd
}
