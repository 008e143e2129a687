package storage

import (
	"context"

	"github.com/mcoot/monopoly-go/internal/model"
)

// Storage defines the interface for saved game persistence. Saves are
// addressed by name, which is derived from the round the game was saved in.
type Storage interface {
	SaveGame(ctx context.Context, state *model.GameState) (string, error)
	LoadGame(ctx context.Context, name string) (*model.GameState, error)
	ListSaves(ctx context.Context) ([]string, error)
	DeleteSave(ctx context.Context, name string) error
}
