package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mcoot/monopoly-go/internal/model"
)

// Service loads, validates and writes map files
type Service struct {
	logger *slog.Logger
}

// New creates a new board service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// ParseMap decodes a map file. A map that decodes but fails validation is
// returned together with an error wrapping ErrInvalidMap.
func (s *Service) ParseMap(data []byte) (*model.Board, error) {
	var b model.Board
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidMap, err)
	}
	if b.Squares == nil {
		b.Squares = make(map[int]*model.Square)
	}
	if problems := b.Validate(); len(problems) > 0 {
		return &b, &ValidationError{Problems: problems}
	}
	return &b, nil
}

// LoadMap reads and validates the map file at path
func (s *Service) LoadMap(ctx context.Context, path string) (*model.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", model.ErrMapNotFound, path)
		}
		return nil, fmt.Errorf("failed to read map: %w", err)
	}

	b, err := s.ParseMap(data)
	if err != nil {
		s.logger.Warn("map rejected", slog.String("path", path), slog.String("error", err.Error()))
		return b, err
	}

	s.logger.Debug("map loaded", slog.String("path", path), slog.Int("size", b.Size))
	return b, nil
}

// SaveMap writes the map as indented JSON. Invalid maps are refused.
func (s *Service) SaveMap(ctx context.Context, path string, b *model.Board) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if problems := b.Validate(); len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	data, err := json.MarshalIndent(b, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode map: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create map directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write map: %w", err)
	}

	s.logger.Info("map saved", slog.String("path", path), slog.Int("size", b.Size))
	return nil
}

// ListMaps returns every file name in dir, sorted, whatever its extension.
// Hidden files are skipped. A missing directory has no maps.
func (s *Service) ListMaps(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Summary lists every position of the map, one line each
func Summary(b *model.Board) []string {
	lines := make([]string, 0, b.Size)
	for pos := 1; pos <= b.Size; pos++ {
		sq := b.Get(pos)
		switch {
		case sq == nil:
			lines = append(lines, fmt.Sprintf("Square %d: Undefined", pos))
		case sq.IsProperty():
			lines = append(lines, fmt.Sprintf("Square %d: %s, %s (Price: %d, Rent: %d)", pos, sq.Kind, sq.Name, sq.Price, sq.Rent))
		default:
			lines = append(lines, fmt.Sprintf("Square %d: %s, %s", pos, sq.Kind, sq.Name))
		}
	}
	return lines
}

// ValidationError carries every problem found with a map
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", model.ErrInvalidMap, strings.Join(e.Problems, " "))
}

func (e *ValidationError) Unwrap() error {
	return model.ErrInvalidMap
}
