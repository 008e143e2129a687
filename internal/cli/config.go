package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/monopoly-go/internal/config"
	"github.com/mcoot/monopoly-go/internal/factory"
)

// Config holds the global command-line flags. Flags that are set override
// the environment.
type Config struct {
	EnvFile  string
	Storage  string
	SaveDir  string
	MapDir   string
	LogLevel string
	Output   string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		EnvFile: config.DefaultEnvFile,
		Output:  FormatText,
	}
}

// Load reads the environment and applies any flags set on cmd
func (c *Config) Load(cmd *cobra.Command) (*config.Config, error) {
	env, err := config.Load(c.EnvFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("storage") {
		env.Storage = c.Storage
	}
	if flags.Changed("save-dir") {
		env.SaveDir = c.SaveDir
	}
	if flags.Changed("map-dir") {
		env.MapDir = c.MapDir
	}
	if flags.Changed("log-level") {
		env.LogLevel = c.LogLevel
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	switch c.Output {
	case FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	return env, nil
}

// runtime is the state shared by the commands of one invocation
type runtime struct {
	cfg    *Config
	env    *config.Config
	logger *slog.Logger
	app    *factory.App
}

// App wires the application on first use so commands that only touch map
// files never connect to a save backend
func (r *runtime) App() (*factory.App, error) {
	if r.app != nil {
		return r.app, nil
	}
	app, err := factory.New(factory.FromConfig(r.env, r.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	r.app = app
	return app, nil
}

func (r *runtime) setup(cmd *cobra.Command, logOut io.Writer) error {
	env, err := r.cfg.Load(cmd)
	if err != nil {
		return err
	}
	r.env = env
	r.logger = env.NewLogger(logOut)
	return nil
}

func (r *runtime) close() error {
	if r.app == nil {
		return nil
	}
	err := r.app.Close()
	r.app = nil
	return err
}

func (r *runtime) output(cmd *cobra.Command) *Output {
	return NewOutput(r.cfg.Output, cmd.OutOrStdout())
}
