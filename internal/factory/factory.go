package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/monopoly-go/internal/config"
	"github.com/mcoot/monopoly-go/internal/dependencies/clock"
	"github.com/mcoot/monopoly-go/internal/dependencies/random"
	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/services/board"
	"github.com/mcoot/monopoly-go/internal/services/dice"
	"github.com/mcoot/monopoly-go/internal/services/game"
	"github.com/mcoot/monopoly-go/internal/services/scoring"
	"github.com/mcoot/monopoly-go/internal/services/session"
	"github.com/mcoot/monopoly-go/internal/storage"
	filestorage "github.com/mcoot/monopoly-go/internal/storage/file"
	"github.com/mcoot/monopoly-go/internal/storage/memory"
	redisstorage "github.com/mcoot/monopoly-go/internal/storage/redis"
	sqlitestorage "github.com/mcoot/monopoly-go/internal/storage/sqlite"
	"github.com/mcoot/monopoly-go/internal/transport/websocket"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DiceRoller     *dice.Roller
	BoardService   *board.Service
	ScoringService *scoring.Service
	SessionService *session.Service
	Hub            *websocket.Hub

	Logger *slog.Logger
	MapDir string

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the save backend ("file", "memory", "redis" or "sqlite")
	// If empty, defaults to "file"
	StorageType string
	// SaveDir is the directory for file saves
	SaveDir string
	// MapDir is the directory map files are listed from
	MapDir string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// DiceFaces is the number of faces on each die (0 means the default)
	DiceFaces int
	// MaxRounds caps the game length (0 means the default)
	MaxRounds int
}

// FromConfig maps environment settings onto a factory Config
func FromConfig(cfg *config.Config, logger *slog.Logger) Config {
	fc := Config{
		Logger:      logger,
		StorageType: cfg.Storage,
		SaveDir:     cfg.SaveDir,
		MapDir:      cfg.MapDir,
		SQLitePath:  cfg.SQLitePath,
		DiceFaces:   cfg.DiceFaces,
		MaxRounds:   cfg.MaxRounds,
	}
	if cfg.Storage == config.StorageRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.SaveTTL = cfg.RedisSaveTTL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	clk := clock.New()
	rnd := random.New()

	store, closer, err := newStorage(cfg, clk)
	if err != nil {
		return nil, err
	}

	app := newWithDependencies(store, clk, rnd, cfg, logger)
	if closer != nil {
		app.closers = append(app.closers, closer)
	}
	return app, nil
}

func newStorage(cfg Config, clk clock.Clock) (storage.Storage, io.Closer, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageFile
	}

	switch storageType {
	case config.StorageFile:
		return filestorage.New(cfg.SaveDir), nil, nil
	case config.StorageMemory:
		return memory.New(), nil, nil
	case config.StorageRedis:
		if cfg.RedisConfig == nil {
			return nil, nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, nil, err
		}
		return redisStore, redisStore, nil
	case config.StorageSQLite:
		sqliteStore, err := sqlitestorage.Open(cfg.SQLitePath, clk)
		if err != nil {
			return nil, nil, err
		}
		return sqliteStore, sqliteStore, nil
	default:
		return nil, nil, fmt.Errorf("invalid StorageType %q: must be 'file', 'memory', 'redis' or 'sqlite'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) *App {
	mapDir := cfg.MapDir
	if mapDir == "" {
		mapDir = "map"
	}
	maxRounds := cfg.MaxRounds
	if maxRounds <= 0 {
		maxRounds = model.DefaultMaxRounds
	}

	boardService := board.New(logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		DiceRoller:     dice.New(rnd, cfg.DiceFaces),
		BoardService:   boardService,
		ScoringService: scoring.New(maxRounds),
		SessionService: session.New(store, boardService, mapDir, logger),
		Hub:            websocket.NewHub(logger),
		Logger:         logger,
		MapDir:         mapDir,
	}
}

// NewGameController creates a turn engine for the given game, sharing the
// app's storage, scoring rules and randomness
func (a *App) NewGameController(state *model.GameState, input game.Input, notifier game.Notifier) *game.Controller {
	return game.NewController(
		state,
		input,
		notifier,
		a.Storage,
		a.ScoringService,
		a.Random,
		a.Clock,
		a.Logger,
	)
}

// Close releases storage connections and disconnects spectators
func (a *App) Close() error {
	a.Hub.Close()
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
