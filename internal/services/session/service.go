package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/services/board"
	"github.com/mcoot/monopoly-go/internal/storage"
)

// SetupInput answers the questions asked before a game starts. An empty
// file choice means the user wants to go back.
type SetupInput interface {
	ChooseDebugMode(ctx context.Context) (bool, error)
	ChooseUseSave(ctx context.Context) (bool, error)
	ChooseSaveFile(ctx context.Context, saves []string) (string, error)
	ChooseMapFile(ctx context.Context, maps []string) (string, error)
	ChoosePlayerCount(ctx context.Context, min, max int) (int, error)
	ChoosePlayerName(ctx context.Context, index int) (string, error)
	Notice(ctx context.Context, message string)
}

// Setup is a game ready to be played
type Setup struct {
	State    *model.GameState
	Debug    bool
	SaveName string // Set when the game was restored from a save
	MapFile  string // Set for new games
}

// Service creates new games from map files and restores saved ones
type Service struct {
	storage      storage.Storage
	boardService *board.Service
	mapDir       string
	logger       *slog.Logger
}

// New creates a new session service reading maps from mapDir
func New(storage storage.Storage, boardService *board.Service, mapDir string, logger *slog.Logger) *Service {
	return &Service{
		storage:      storage,
		boardService: boardService,
		mapDir:       mapDir,
		logger:       logger,
	}
}

// NewGame starts a game on the map at mapPath. Names go through
// ValidatePlayerName, so empty names receive defaults.
func (s *Service) NewGame(ctx context.Context, mapPath string, names []string) (*model.GameState, error) {
	if err := ValidatePlayerCount(len(names)); err != nil {
		return nil, err
	}

	b, err := s.boardService.LoadMap(ctx, mapPath)
	if err != nil {
		return nil, err
	}

	accepted := make([]string, 0, len(names))
	for i, raw := range names {
		name, err := ValidatePlayerName(raw, i+1, accepted)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		accepted = append(accepted, name)
	}

	state := model.NewGameState(b, accepted)
	s.logger.Info("new game created",
		slog.String("map", mapPath),
		slog.Int("players", state.PlayersNum),
	)
	return state, nil
}

// LoadGame restores a saved game by name
func (s *Service) LoadGame(ctx context.Context, name string) (*model.GameState, error) {
	state, err := s.storage.LoadGame(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := state.CheckConsistency(); err != nil {
		s.logger.Warn("save has inconsistent ownership",
			slog.String("save", name),
			slog.String("error", err.Error()),
		)
	}
	s.logger.Info("game loaded",
		slog.String("save", name),
		slog.Int("round", state.RoundNum),
		slog.Int("players", state.PlayersNum),
	)
	return state, nil
}

// Start asks the user how to begin: resume a save or set up a new game.
// Problems with a choice are reported and the question asked again.
func (s *Service) Start(ctx context.Context, in SetupInput) (*Setup, error) {
	debug, err := in.ChooseDebugMode(ctx)
	if err != nil {
		return nil, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		useSave, err := in.ChooseUseSave(ctx)
		if err != nil {
			return nil, err
		}

		var setup *Setup
		if useSave {
			setup, err = s.chooseSave(ctx, in)
		} else {
			setup, err = s.chooseNewGame(ctx, in)
		}
		if err != nil {
			return nil, err
		}
		if setup != nil {
			setup.Debug = debug
			return setup, nil
		}
	}
}

func (s *Service) chooseSave(ctx context.Context, in SetupInput) (*Setup, error) {
	saves, err := s.storage.ListSaves(ctx)
	if err != nil {
		return nil, err
	}
	if len(saves) == 0 {
		in.Notice(ctx, "No save files available.")
		return nil, nil
	}

	for {
		name, err := in.ChooseSaveFile(ctx, saves)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, nil
		}

		state, err := s.LoadGame(ctx, name)
		if errors.Is(err, model.ErrSaveNotFound) || errors.Is(err, model.ErrInvalidSave) {
			in.Notice(ctx, err.Error())
			continue
		}
		if err != nil {
			return nil, err
		}
		return &Setup{State: state, SaveName: name}, nil
	}
}

func (s *Service) chooseNewGame(ctx context.Context, in SetupInput) (*Setup, error) {
	maps, err := s.boardService.ListMaps(s.mapDir)
	if err != nil {
		return nil, err
	}
	if len(maps) == 0 {
		in.Notice(ctx, "No available map files.")
		return nil, nil
	}

	var b *model.Board
	var mapPath string
	for b == nil {
		file, err := in.ChooseMapFile(ctx, maps)
		if err != nil {
			return nil, err
		}
		if file == "" {
			return nil, nil
		}

		mapPath = filepath.Join(s.mapDir, filepath.Base(file))
		loaded, err := s.boardService.LoadMap(ctx, mapPath)
		var verr *board.ValidationError
		switch {
		case errors.As(err, &verr):
			for _, problem := range verr.Problems {
				in.Notice(ctx, problem)
			}
		case errors.Is(err, model.ErrMapNotFound), errors.Is(err, model.ErrInvalidMap):
			in.Notice(ctx, err.Error())
		case err != nil:
			return nil, err
		default:
			b = loaded
		}
	}

	count, err := s.choosePlayerCount(ctx, in)
	if err != nil {
		return nil, err
	}
	names, err := s.choosePlayerNames(ctx, in, count)
	if err != nil {
		return nil, err
	}

	state := model.NewGameState(b, names)
	s.logger.Info("new game created",
		slog.String("map", mapPath),
		slog.Int("players", state.PlayersNum),
	)
	return &Setup{State: state, MapFile: mapPath}, nil
}

func (s *Service) choosePlayerCount(ctx context.Context, in SetupInput) (int, error) {
	for {
		n, err := in.ChoosePlayerCount(ctx, model.MinPlayers, model.MaxPlayers)
		if err != nil {
			return 0, err
		}
		if err := ValidatePlayerCount(n); err != nil {
			in.Notice(ctx, err.Error())
			continue
		}
		return n, nil
	}
}

func (s *Service) choosePlayerNames(ctx context.Context, in SetupInput, count int) ([]string, error) {
	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		for {
			raw, err := in.ChoosePlayerName(ctx, i)
			if err != nil {
				return nil, err
			}
			name, err := ValidatePlayerName(raw, i, names)
			if err != nil {
				in.Notice(ctx, err.Error())
				continue
			}
			names = append(names, name)
			break
		}
	}
	return names, nil
}
