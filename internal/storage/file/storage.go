package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/storage"
)

// DefaultDir is the directory saves are written to when none is configured
const DefaultDir = "save"

// Storage keeps one JSON file per save in a directory
type Storage struct {
	dir string
}

// New creates a file storage rooted at dir. The directory is created on the
// first save.
func New(dir string) *Storage {
	if dir == "" {
		dir = DefaultDir
	}
	return &Storage{dir: dir}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dir returns the save directory
func (s *Storage) Dir() string {
	return s.dir
}

func (s *Storage) path(name string) string {
	return filepath.Join(s.dir, storage.NormalizeName(name))
}

func (s *Storage) SaveGame(ctx context.Context, state *model.GameState) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := storage.Encode(state)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create save directory: %w", err)
	}

	name := storage.SaveName(state.RoundNum)
	if err := os.WriteFile(s.path(name), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write save file: %w", err)
	}
	return name, nil
}

func (s *Storage) LoadGame(ctx context.Context, name string) (*model.GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", model.ErrSaveNotFound, name)
		}
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	return storage.Decode(data)
}

func (s *Storage) ListSaves(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	storage.SortSaveNames(names)
	return names, nil
}

func (s *Storage) DeleteSave(ctx context.Context, name string) error {
	err := os.Remove(s.path(name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete save file: %w", err)
	}
	return nil
}
