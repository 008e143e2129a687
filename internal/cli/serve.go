package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/monopoly-go/internal/api"
)

func newServeCmd(rt *runtime) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.App()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			go app.Hub.Run()

			serverCfg := api.DefaultServerConfig()
			serverCfg.Addr = rt.env.Addr
			if cmd.Flags().Changed("addr") {
				serverCfg.Addr = addr
			}
			server := api.NewServer(api.NewRouter(api.RouterConfig{
				Logger:         app.Logger,
				Storage:        app.Storage,
				BoardService:   app.BoardService,
				ScoringService: app.ScoringService,
				Hub:            app.Hub,
			}), serverCfg, app.Logger)

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				app.Logger.Info("shutdown signal received", slog.String("reason", ctx.Err().Error()))
				return server.Shutdown(context.WithoutCancel(ctx))
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (env: MONOPOLY_ADDR)")

	return cmd
}
