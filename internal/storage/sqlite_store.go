package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kwheeler/goalpost/internal/migration"
	"github.com/kwheeler/goalpost/internal/models"
	"github.com/kwheeler/goalpost/migrations"
)

// SQLiteStore persists user documents in a local SQLite database, one JSON
// document per row.
type SQLiteStore struct {
	path  string
	db    *sql.DB
	logFn func(string)
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path:  path,
		logFn: func(msg string) { fmt.Println(msg) },
	}
}

// SetMigrationLog overrides where migration progress is printed.
func (s *SQLiteStore) SetMigrationLog(logFn func(string)) {
	s.logFn = logFn
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	runner := migration.NewRunner(s.db, migrations.SQLite())
	if _, err := runner.ApplyMigrations(s.logFn); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'goalpost init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	runner := migration.NewRunner(s.db, migrations.SQLite())
	if err := runner.ValidateVersion(); err != nil {
		return err
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Load(userID string) (models.UserState, error) {
	if err := s.ensureOpen(); err != nil {
		return models.UserState{}, err
	}

	var doc string
	err := s.db.QueryRow("SELECT doc FROM user_states WHERE user_id = ?", userID).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserState{}, ErrNotFound
		}
		return models.UserState{}, fmt.Errorf("failed to load user state: %w", err)
	}

	var state models.UserState
	if err := json.Unmarshal([]byte(doc), &state); err != nil {
		return models.UserState{}, fmt.Errorf("failed to parse user state: %w", err)
	}
	state.Normalize()
	return state, nil
}

func (s *SQLiteStore) Save(userID string, state models.UserState) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize user state: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO user_states (user_id, doc, updated_at) VALUES (?, ?, ?)",
		userID, string(doc), now,
	)
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
