package geocode

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed cache mapping coordinate keys to resolved place labels.
// Keys are expected to be pre-rounded by the resolver so nearby lookups
// collide onto the same row.
type SqlitePlaceCache struct {
	DB *sql.DB
}

func NewSqlitePlaceCache(db *sql.DB) *SqlitePlaceCache {
	return &SqlitePlaceCache{DB: db}
}

// InitPlaceCacheSchema creates the cache table when missing.
func InitPlaceCacheSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init place cache schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS place_cache (
        key TEXT PRIMARY KEY,
        label TEXT NOT NULL
    );
	`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init place cache schema: %w", err)
	}

	return nil
}

func (s *SqlitePlaceCache) Get(ctx context.Context, key string) (string, bool, error) {
	if s.DB == nil {
		return "", false, errors.New("place cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, nil
	}

	var label string
	err := s.DB.QueryRowContext(ctx, `SELECT label FROM place_cache WHERE key = ?;`, key).Scan(&label)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get place cache key=%q: %w", key, err)
	}

	return label, true, nil
}

func (s *SqlitePlaceCache) Put(ctx context.Context, key, label string) error {
	if s.DB == nil {
		return errors.New("place cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("put place cache: empty key")
	}

	q := `
	INSERT OR REPLACE INTO place_cache (key, label)
    VALUES (?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, q, key, label); err != nil {
		return fmt.Errorf("put place cache key=%q: %w", key, err)
	}

	return nil
}
