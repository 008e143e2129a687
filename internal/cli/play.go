package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/monopoly-go/internal/api"
	"github.com/mcoot/monopoly-go/internal/factory"
	"github.com/mcoot/monopoly-go/internal/services/game"
)

func newPlayCmd(rt *runtime) *cobra.Command {
	var watch string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a new game or resume a saved one",
		Long: `Start a new game or resume a saved one.

With --watch, the read-only HTTP API is served on the given address while
the game runs and every game event is streamed to websocket spectators at
/api/v1/events.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.App()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			console := NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), app.DiceRoller)

			var notifier game.Notifier = console
			if watch != "" {
				stop, err := startSpectatorServer(ctx, app, watch, console)
				if err != nil {
					return err
				}
				defer stop()
				notifier = game.MultiNotifier{console, app.Hub}
			}

			err = play(ctx, app, console, notifier, rt.output(cmd))
			if errors.Is(err, ErrInputClosed) {
				rt.logger.Info("input closed, leaving game")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&watch, "watch", "", "Serve the spectator feed on this address, e.g. :8081")

	return cmd
}

// play runs one session: setup, then rounds until game over or save-and-exit
func play(ctx context.Context, app *factory.App, console *Console, notifier game.Notifier, out *Output) error {
	setup, err := app.SessionService.Start(ctx, console)
	if err != nil {
		return err
	}

	controller := app.NewGameController(setup.State, console, notifier)
	controller.SetDebug(setup.Debug)

	outcome, err := controller.Run(ctx)
	if err != nil {
		return err
	}
	if outcome.Saved {
		return nil
	}

	out.Print(outcome.Standings)
	return nil
}

// startSpectatorServer serves the API and websocket feed next to the game
func startSpectatorServer(ctx context.Context, app *factory.App, addr string, console *Console) (func(), error) {
	go app.Hub.Run()

	router := api.NewRouter(api.RouterConfig{
		Logger:         app.Logger,
		Storage:        app.Storage,
		BoardService:   app.BoardService,
		ScoringService: app.ScoringService,
		Hub:            app.Hub,
	})
	serverCfg := api.DefaultServerConfig()
	serverCfg.Addr = addr
	server := api.NewServer(router, serverCfg, app.Logger)
	if err := server.Listen(); err != nil {
		return nil, err
	}

	go func() {
		if err := server.Start(); err != nil {
			app.Logger.Error("spectator server failed", slog.String("error", err.Error()))
		}
	}()
	console.Notice(ctx, fmt.Sprintf("Spectators can watch at ws://%s/api/v1/events", server.Addr()))

	return func() {
		if err := server.Shutdown(context.WithoutCancel(ctx)); err != nil {
			app.Logger.Warn("spectator server shutdown failed", slog.String("error", err.Error()))
		}
	}, nil
}
