// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/verte-zerg/wordgoal/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Setting keys as stored in the settings table.
const (
	keyIncludeSpaces      = "include-spaces"
	keyIncludePunctuation = "include-punctuation"
	keyEnableGoal         = "enable-goal"
	keyGoalType           = "goal-type"
	keyGoalCount          = "goal-count"
)

// Store wraps SQLite access for persisted settings.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Load returns the persisted settings. Keys that are missing, unknown or
// unparsable are left absent so older databases load cleanly.
func (s *Store) Load(ctx context.Context) (model.PartialConfig, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return model.PartialConfig{}, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var p model.PartialConfig
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return model.PartialConfig{}, err
		}
		applySetting(&p, key, value)
	}
	if err := rows.Err(); err != nil {
		return model.PartialConfig{}, err
	}
	return p, nil
}

func applySetting(p *model.PartialConfig, key, value string) {
	switch key {
	case keyIncludeSpaces:
		if v, err := strconv.ParseBool(value); err == nil {
			p.IncludeSpaces = &v
		}
	case keyIncludePunctuation:
		if v, err := strconv.ParseBool(value); err == nil {
			p.IncludePunctuation = &v
		}
	case keyEnableGoal:
		if v, err := strconv.ParseBool(value); err == nil {
			p.EnableGoal = &v
		}
	case keyGoalType:
		if v, err := model.ParseGoalType(value); err == nil {
			p.GoalType = &v
		}
	case keyGoalCount:
		if v, err := strconv.Atoi(value); err == nil && v > 0 {
			p.GoalCount = &v
		}
	}
}

// Save replaces the persisted settings with cfg.
func (s *Store) Save(ctx context.Context, cfg model.Config) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	values := [][2]string{
		{keyIncludeSpaces, strconv.FormatBool(cfg.IncludeSpaces)},
		{keyIncludePunctuation, strconv.FormatBool(cfg.IncludePunctuation)},
		{keyEnableGoal, strconv.FormatBool(cfg.EnableGoal)},
		{keyGoalType, string(cfg.GoalType)},
		{keyGoalCount, strconv.Itoa(cfg.GoalCount)},
	}
	for _, kv := range values {
		if _, err = stmt.ExecContext(ctx, kv[0], kv[1]); err != nil {
			return fmt.Errorf("save %s: %w", kv[0], err)
		}
	}
	return tx.Commit()
}
