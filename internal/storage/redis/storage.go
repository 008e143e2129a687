package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, state *model.GameState) (string, error) {
	data, err := storage.Encode(state)
	if err != nil {
		return "", err
	}

	name := storage.SaveName(state.RoundNum)

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, saveKey(name), data, s.cfg.SaveTTL)
	pipe.SAdd(ctx, savesIndexKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return name, nil
}

func (s *Storage) LoadGame(ctx context.Context, name string) (*model.GameState, error) {
	name = storage.NormalizeName(name)
	data, err := s.client.Get(ctx, saveKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", model.ErrSaveNotFound, name)
		}
		return nil, err
	}
	return storage.Decode(data)
}

// ListSaves returns the indexed saves that still exist. Index entries whose
// save has expired are pruned.
func (s *Storage) ListSaves(ctx context.Context) ([]string, error) {
	members, err := s.client.SMembers(ctx, savesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(members))
	var stale []any
	for _, name := range members {
		exists, err := s.client.Exists(ctx, saveKey(name)).Result()
		if err != nil {
			return nil, err
		}
		if exists == 0 {
			stale = append(stale, name)
			continue
		}
		names = append(names, name)
	}

	if len(stale) > 0 {
		if err := s.client.SRem(ctx, savesIndexKey(), stale...).Err(); err != nil {
			return nil, err
		}
	}

	storage.SortSaveNames(names)
	return names, nil
}

func (s *Storage) DeleteSave(ctx context.Context, name string) error {
	name = storage.NormalizeName(name)
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, saveKey(name))
	pipe.SRem(ctx, savesIndexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}
