// Package sqlite stores saved games in a single SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mcoot/monopoly-go/internal/dependencies/clock"
	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/storage"
)

const schema = `CREATE TABLE IF NOT EXISTS saves (
	name      TEXT PRIMARY KEY,
	round_num INTEGER NOT NULL,
	data      BLOB NOT NULL,
	saved_at  INTEGER NOT NULL
)`

// Storage persists saves in SQLite. Saving the same round twice replaces the
// earlier row.
type Storage struct {
	db    *sql.DB
	clock clock.Clock
}

// Open opens (creating if needed) the database at path and ensures the schema
func Open(path string, clk clock.Clock) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Storage{db: db, clock: clk}, nil
}

// Close closes the database handle
func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, state *model.GameState) (string, error) {
	data, err := storage.Encode(state)
	if err != nil {
		return "", err
	}
	name := storage.SaveName(state.RoundNum)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO saves (name, round_num, data, saved_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   round_num = excluded.round_num,
		   data = excluded.data,
		   saved_at = excluded.saved_at`,
		name, state.RoundNum, data, s.clock.Now().UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("insert save: %w", err)
	}
	return name, nil
}

func (s *Storage) LoadGame(ctx context.Context, name string) (*model.GameState, error) {
	name = storage.NormalizeName(name)
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM saves WHERE name = ?`, name).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", model.ErrSaveNotFound, name)
		}
		return nil, fmt.Errorf("query save: %w", err)
	}
	return storage.Decode(data)
}

func (s *Storage) ListSaves(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM saves ORDER BY round_num, name`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan save: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saves: %w", err)
	}
	return names, nil
}

func (s *Storage) DeleteSave(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE name = ?`, storage.NormalizeName(name))
	if err != nil {
		return fmt.Errorf("delete save: %w", err)
	}
	return nil
}
