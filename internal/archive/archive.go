// Package archive persists completed seasons and careers to an embedded
// SQLite database. The archive is optional; a nil Store is a no-op.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"gridiron-sim/internal/sim/career"
	"gridiron-sim/internal/sim/season"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("archive: not found")

const schema = `
CREATE TABLE IF NOT EXISTS seasons (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	seed       INTEGER NOT NULL,
	weeks      INTEGER NOT NULL,
	champion   TEXT NOT NULL DEFAULT '',
	summary    TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS careers (
	player_id  TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	stage      TEXT NOT NULL,
	retired    INTEGER NOT NULL DEFAULT 0,
	state      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// Store is a SQLite-backed archive of simulation results.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the archive database at path and applies the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveSeason stores one season summary and returns its row id.
func (s *Store) SaveSeason(ctx context.Context, summary *season.Summary) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	if summary == nil {
		return 0, errors.New("archive: nil summary")
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		return 0, fmt.Errorf("encode summary: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO seasons (seed, weeks, champion, summary, created_at) VALUES (?, ?, ?, ?, ?)`,
		summary.Seed, summary.Weeks, summary.Champion, string(payload),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert season: %w", err)
	}
	return res.LastInsertId()
}

// LatestSeason returns the most recently archived season summary.
func (s *Store) LatestSeason(ctx context.Context) (*season.Summary, error) {
	if s == nil || s.db == nil {
		return nil, ErrNotFound
	}
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT summary FROM seasons ORDER BY id DESC LIMIT 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query season: %w", err)
	}
	var summary season.Summary
	if err := json.Unmarshal([]byte(payload), &summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return &summary, nil
}

// SeasonCount returns the number of archived seasons.
func (s *Store) SeasonCount(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM seasons`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count seasons: %w", err)
	}
	return n, nil
}

// SaveCareer stores or replaces one career state keyed by player id.
func (s *Store) SaveCareer(ctx context.Context, state *career.State) error {
	if s == nil || s.db == nil {
		return nil
	}
	if state == nil || state.Player == nil {
		return errors.New("archive: career state missing player")
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode career: %w", err)
	}
	retired := 0
	if state.Retired {
		retired = 1
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO careers (player_id, name, stage, retired, state, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(player_id) DO UPDATE SET
		   name=excluded.name, stage=excluded.stage, retired=excluded.retired,
		   state=excluded.state, updated_at=excluded.updated_at`,
		state.Player.ID, state.Player.Name, string(state.Stage), retired,
		string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert career: %w", err)
	}
	return nil
}

// Career loads one archived career state by player id.
func (s *Store) Career(ctx context.Context, playerID string) (*career.State, error) {
	if s == nil || s.db == nil {
		return nil, ErrNotFound
	}
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM careers WHERE player_id = ?`, playerID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query career: %w", err)
	}
	var state career.State
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, fmt.Errorf("decode career: %w", err)
	}
	return &state, nil
}

// RetiredCareers returns the archived careers flagged retired.
func (s *Store) RetiredCareers(ctx context.Context) ([]*career.State, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT state FROM careers WHERE retired = 1 ORDER BY player_id`)
	if err != nil {
		return nil, fmt.Errorf("query retired careers: %w", err)
	}
	defer rows.Close()

	var out []*career.State
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var state career.State
		if err := json.Unmarshal([]byte(payload), &state); err != nil {
			return nil, fmt.Errorf("decode career: %w", err)
		}
		out = append(out, &state)
	}
	return out, rows.Err()
}
