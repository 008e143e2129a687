// Package config reads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageFile   = "file"
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// DefaultEnvFile is loaded when present and no other files are named
const DefaultEnvFile = ".env"

// Config holds application settings
type Config struct {
	Storage      string        `env:"MONOPOLY_STORAGE" envDefault:"file"`
	SaveDir      string        `env:"MONOPOLY_SAVE_DIR" envDefault:"save"`
	MapDir       string        `env:"MONOPOLY_MAP_DIR" envDefault:"map"`
	RedisURL     string        `env:"MONOPOLY_REDIS_URL" envDefault:"redis://localhost:6379"`
	RedisSaveTTL time.Duration `env:"MONOPOLY_REDIS_SAVE_TTL" envDefault:"0s"`
	SQLitePath   string        `env:"MONOPOLY_SQLITE_PATH" envDefault:"monopoly.db"`
	DiceFaces    int           `env:"MONOPOLY_DICE_FACES" envDefault:"4"`
	MaxRounds    int           `env:"MONOPOLY_MAX_ROUNDS" envDefault:"100"`
	LogLevel     string        `env:"MONOPOLY_LOG_LEVEL" envDefault:"warn"`
	LogFormat    string        `env:"MONOPOLY_LOG_FORMAT" envDefault:"text"`
	Addr         string        `env:"MONOPOLY_ADDR" envDefault:":8080"`
}

// Load reads the given env files (or .env) into the environment without
// overriding variables that are already set, then parses the Config.
// Missing env files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, file := range envFiles {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that the environment parser cannot
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageFile, StorageMemory, StorageRedis, StorageSQLite:
	default:
		return fmt.Errorf("invalid storage %q: must be one of file, memory, redis, sqlite", c.Storage)
	}
	if c.DiceFaces < 1 {
		return fmt.Errorf("dice faces must be positive, got %d", c.DiceFaces)
	}
	if c.MaxRounds < 1 {
		return fmt.Errorf("max rounds must be positive, got %d", c.MaxRounds)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.LogFormat)
	}
	return nil
}

// ParseLevel converts a level name to a slog level, defaulting to warn
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger builds the application logger writing to w
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(c.LogLevel)}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
