package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kwheeler/goalpost/internal/models"
)

type jsonDocument struct {
	Version int                         `json:"version"`
	Users   map[string]models.UserState `json:"users"`
}

// JSONStore keeps every user's document in a single JSON file. Intended for
// inspection and tests; the SQLite store is the default backend.
type JSONStore struct {
	path string
	mu   sync.Mutex
	doc  *jsonDocument
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &jsonDocument{
		Version: 1,
		Users:   make(map[string]models.UserState),
	}
	return s.write()
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) ensureLoaded() error {
	if s.doc != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'goalpost init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &jsonDocument{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		s.doc = nil
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if s.doc.Users == nil {
		s.doc.Users = make(map[string]models.UserState)
	}
	return nil
}

func (s *JSONStore) write() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Load(userID string) (models.UserState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return models.UserState{}, err
	}

	state, ok := s.doc.Users[userID]
	if !ok {
		return models.UserState{}, ErrNotFound
	}
	state.Normalize()
	return state, nil
}

func (s *JSONStore) Save(userID string, state models.UserState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}

	s.doc.Users[userID] = state
	return s.write()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
