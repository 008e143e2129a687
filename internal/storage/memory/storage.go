package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Saves are kept encoded so loads never alias a running game.
type Storage struct {
	mu    sync.RWMutex
	saves map[string][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		saves: make(map[string][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, state *model.GameState) (string, error) {
	data, err := storage.Encode(state)
	if err != nil {
		return "", err
	}
	name := storage.SaveName(state.RoundNum)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves[name] = data
	return name, nil
}

func (s *Storage) LoadGame(ctx context.Context, name string) (*model.GameState, error) {
	s.mu.RLock()
	data, ok := s.saves[storage.NormalizeName(name)]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrSaveNotFound, name)
	}
	return storage.Decode(data)
}

func (s *Storage) ListSaves(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.saves))
	for name := range s.saves {
		names = append(names, name)
	}
	storage.SortSaveNames(names)
	return names, nil
}

func (s *Storage) DeleteSave(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saves, storage.NormalizeName(name))
	return nil
}
