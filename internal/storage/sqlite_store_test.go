package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/kwheeler/goalpost/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goalpost.db")
	store := NewSQLiteStore(path)
	store.SetMigrationLog(func(string) {})
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	if _, err := store.Load("alice@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	want := testState()
	if err := store.Save("alice@example.com", want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load("alice@example.com")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Goals) != 1 || got.Goals[0].Title != "Read" {
		t.Errorf("loaded goals = %+v", got.Goals)
	}
	if !got.ArchivedGoals["Run"]["2026-02-01"] {
		t.Error("archive lost in round trip")
	}
}

func TestSQLiteStore_OverwriteAndIsolation(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.Save("alice@example.com", testState()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save("alice@example.com", models.NewUserState()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load("alice@example.com")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Goals) != 0 {
		t.Error("save must overwrite the whole document")
	}

	if _, err := store.Load("bob@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for other user, got %v", err)
	}
}

func TestSQLiteStore_ReopenValidatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goalpost.db")
	store := NewSQLiteStore(path)
	store.SetMigrationLog(func(string) {})
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := store.Save("alice@example.com", testState()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := NewSQLiteStore(path)
	got, err := reopened.Load("alice@example.com")
	if err != nil {
		t.Fatalf("load after reopen: %v", err)
	}
	if len(got.Goals) != 1 {
		t.Error("document lost across reopen")
	}
	reopened.Close()
}

func TestSQLiteStore_NotInitialized(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := store.Load("alice@example.com"); err == nil {
		t.Error("expected error for uninitialized storage")
	}
}
