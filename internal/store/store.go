// Package store persists the sunrise cache between process runs.
//
// The core solar cache is a pure in-memory map; this package is the
// collaborator that snapshots it into SQLite and warms new calculators
// from it. Rows are write-once, matching the cache's append-only contract.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kaiklok/kairos/internal/solar"
)

//go:embed schema.sql
var schemaSQL string

// SunriseStore wraps the SQLite-backed cache.
type SunriseStore struct {
	db *sql.DB
}

// Open creates or opens the cache database at the given path.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (a lost cache row is recomputable)
//   - 5-second busy timeout for lock contention
//
// Idempotent: safe to call against an existing cache file.
func Open(path string) (*SunriseStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sunrise cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sunrise cache: %w", err)
	}

	// SQLite supports one writer at a time; keep the pool at one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &SunriseStore{db: db}, nil
}

// Close closes the database connection.
func (s *SunriseStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func coord(v float64) string { return fmt.Sprintf("%.4f", v) }

// Get returns the cached sunrise for (date, observer), with found=false
// when the row does not exist.
func (s *SunriseStore) Get(date string, obs solar.Observer) (ms int64, found bool, err error) {
	row := s.db.QueryRow(
		"SELECT sunrise_ms FROM sunrise WHERE date = ? AND lat = ? AND lon = ?",
		date, coord(obs.LatitudeDeg), coord(obs.LongitudeDeg),
	)
	switch scanErr := row.Scan(&ms); scanErr {
	case nil:
		return ms, true, nil
	case sql.ErrNoRows:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("failed to read sunrise row: %w", scanErr)
	}
}

// Put stores a sunrise row. Existing rows win: INSERT OR IGNORE keeps the
// first written value, honoring the write-once contract.
func (s *SunriseStore) Put(date string, obs solar.Observer, ms int64) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO sunrise (date, lat, lon, sunrise_ms) VALUES (?, ?, ?, ?)",
		date, coord(obs.LatitudeDeg), coord(obs.LongitudeDeg), ms,
	)
	if err != nil {
		return fmt.Errorf("failed to write sunrise row: %w", err)
	}
	return nil
}

// Load returns all cached entries for the observer, keyed by date, in the
// shape solar.NewCalculatorWithCache accepts.
func (s *SunriseStore) Load(obs solar.Observer) (map[string]int64, error) {
	rows, err := s.db.Query(
		"SELECT date, sunrise_ms FROM sunrise WHERE lat = ? AND lon = ?",
		coord(obs.LatitudeDeg), coord(obs.LongitudeDeg),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load sunrise cache: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var date string
		var ms int64
		if err := rows.Scan(&date, &ms); err != nil {
			return nil, fmt.Errorf("failed to scan sunrise row: %w", err)
		}
		out[date] = ms
	}
	return out, rows.Err()
}

// Save writes a calculator snapshot. Existing rows are left untouched.
func (s *SunriseStore) Save(obs solar.Observer, snapshot map[string]int64) error {
	for date, ms := range snapshot {
		if err := s.Put(date, obs, ms); err != nil {
			return err
		}
	}
	return nil
}
