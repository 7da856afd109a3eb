package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/kwheeler/goalpost/internal/migration"
	"github.com/kwheeler/goalpost/internal/models"
	"github.com/kwheeler/goalpost/migrations"
)

// PostgresStore persists user documents in Postgres for hosted setups where
// several devices share one database. Document semantics are identical to the
// other stores: whole-document writes, last writer wins.
type PostgresStore struct {
	connStr string
	db      *sql.DB
	logFn   func(string)
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
		logFn:   func(msg string) { fmt.Println(msg) },
	}
}

// SetMigrationLog overrides where migration progress is printed.
func (s *PostgresStore) SetMigrationLog(logFn func(string)) {
	s.logFn = logFn
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	runner := migration.NewRunner(s.db, migrations.Postgres())
	if _, err := runner.ApplyMigrations(s.logFn); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *PostgresStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}

	runner := migration.NewRunner(s.db, migrations.Postgres())
	return runner.ValidateVersion()
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) Load(userID string) (models.UserState, error) {
	if err := s.ensureOpen(); err != nil {
		return models.UserState{}, err
	}

	var doc string
	err := s.db.QueryRow("SELECT doc FROM user_states WHERE user_id = $1", userID).Scan(&doc)
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

func (s *PostgresStore) Save(userID string, state models.UserState) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize user state: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`
		INSERT INTO user_states (user_id, doc, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at`,
		userID, string(doc), now,
	)
	return err
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
