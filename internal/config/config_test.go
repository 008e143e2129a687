package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageFile, cfg.Storage)
	assert.Equal(t, "save", cfg.SaveDir)
	assert.Equal(t, "map", cfg.MapDir)
	assert.Equal(t, 4, cfg.DiceFaces)
	assert.Equal(t, 100, cfg.MaxRounds)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Zero(t, cfg.RedisSaveTTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MONOPOLY_STORAGE", "redis")
	t.Setenv("MONOPOLY_REDIS_URL", "redis://cache:6379/2")
	t.Setenv("MONOPOLY_REDIS_SAVE_TTL", "48h")
	t.Setenv("MONOPOLY_DICE_FACES", "6")
	t.Setenv("MONOPOLY_MAX_ROUNDS", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageRedis, cfg.Storage)
	assert.Equal(t, "redis://cache:6379/2", cfg.RedisURL)
	assert.Equal(t, 48*time.Hour, cfg.RedisSaveTTL)
	assert.Equal(t, 6, cfg.DiceFaces)
	assert.Equal(t, 20, cfg.MaxRounds)
}

func TestLoadEnvFileDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(file, []byte("MONOPOLY_MAX_ROUNDS=7\nMONOPOLY_MAP_DIR=maps\n"), 0644))

	// Register cleanup for the variable the file sets, then clear it
	t.Setenv("MONOPOLY_MAX_ROUNDS", "")
	require.NoError(t, os.Unsetenv("MONOPOLY_MAX_ROUNDS"))
	t.Setenv("MONOPOLY_MAP_DIR", "custom")

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.MaxRounds)
	assert.Equal(t, "custom", cfg.MapDir)
}

func TestLoadIgnoresMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("storage", func(t *testing.T) {
		t.Setenv("MONOPOLY_STORAGE", "postgres")
		_, err := Load()
		assert.ErrorContains(t, err, "invalid storage")
	})

	t.Run("dice faces", func(t *testing.T) {
		t.Setenv("MONOPOLY_DICE_FACES", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "dice faces")
	})

	t.Run("not a number", func(t *testing.T) {
		t.Setenv("MONOPOLY_MAX_ROUNDS", "lots")
		_, err := Load()
		assert.ErrorContains(t, err, "parse env")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelWarn, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("verbose"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: "info", LogFormat: "json"}

	logger := cfg.NewLogger(&buf)
	logger.Debug("hidden")
	logger.Info("shown", slog.Int("round", 3))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"round":3`)
}
