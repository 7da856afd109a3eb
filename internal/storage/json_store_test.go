package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/kwheeler/goalpost/internal/models"
)

func testState() models.UserState {
	state := models.NewUserState()
	state.Goals = append(state.Goals, models.Goal{
		ID:            "g1",
		Title:         "Read",
		Progress:      50,
		TotalSegments: 2,
		CompletedDays: models.CompletedDays{"2026-03-13": true},
		CreatedAt:     time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
	})
	state.ArchivedGoals["Run"] = models.CompletedDays{"2026-02-01": true}
	state.LastDailyReset = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return state
}

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goalpost.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	if _, err := store.Load("alice@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a new user, got %v", err)
	}

	want := testState()
	if err := store.Save("alice@example.com", want); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Reload from disk through a fresh store.
	store2 := NewJSONStore(path)
	got, err := store2.Load("alice@example.com")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(got.Goals) != 1 || got.Goals[0].Title != "Read" || got.Goals[0].Progress != 50 {
		t.Errorf("loaded goals = %+v", got.Goals)
	}
	if !got.Goals[0].CompletedDays["2026-03-13"] {
		t.Error("completed days lost in round trip")
	}
	if !got.ArchivedGoals["Run"]["2026-02-01"] {
		t.Error("archive lost in round trip")
	}
	if !got.LastDailyReset.Equal(want.LastDailyReset) {
		t.Errorf("last reset = %v, want %v", got.LastDailyReset, want.LastDailyReset)
	}
}

func TestJSONStore_UserIsolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goalpost.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	if err := store.Save("alice@example.com", testState()); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := store.Load("bob@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for other user, got %v", err)
	}
}

func TestJSONStore_WholeDocumentOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goalpost.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	if err := store.Save("alice@example.com", testState()); err != nil {
		t.Fatalf("save: %v", err)
	}

	empty := models.NewUserState()
	if err := store.Save("alice@example.com", empty); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load("alice@example.com")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Goals) != 0 {
		t.Error("save must overwrite the whole document")
	}
}

func TestJSONStore_NotInitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := store.Load("alice@example.com"); err == nil {
		t.Error("expected error for uninitialized storage")
	}
}

func TestJSONStore_DoubleInitRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goalpost.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("expected error when initializing twice")
	}
}
