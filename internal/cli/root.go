package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rt := &runtime{cfg: DefaultConfig()}
	cfg := rt.cfg

	rootCmd := &cobra.Command{
		Use:   "monopoly",
		Short: "Text-driven Monopoly for 2-6 players at one terminal",
		Long: `monopoly plays hot-seat Monopoly in the terminal.

Start a game with "monopoly play". Maps are JSON files read from the map
directory; games saved between rounds can be resumed or inspected with
"monopoly saves". "monopoly serve" exposes saves and map validation over a
read-only HTTP API.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup(cmd, cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return rt.close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Env file loaded before reading the environment")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Save backend: file, memory, redis, sqlite (env: MONOPOLY_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.SaveDir, "save-dir", cfg.SaveDir, "Save directory for file storage (env: MONOPOLY_SAVE_DIR)")
	rootCmd.PersistentFlags().StringVar(&cfg.MapDir, "map-dir", cfg.MapDir, "Map directory (env: MONOPOLY_MAP_DIR)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: MONOPOLY_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd(rt))
	rootCmd.AddCommand(newMapCmd(rt))
	rootCmd.AddCommand(newSavesCmd(rt))
	rootCmd.AddCommand(newServeCmd(rt))

	return rootCmd
}

// Execute runs the root command until it finishes or the process is
// interrupted
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
