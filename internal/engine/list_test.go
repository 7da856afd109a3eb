package engine

import (
	"testing"
	"time"

	"github.com/kwheeler/goalpost/internal/models"
)

func TestSortGoals_IncompleteNewestFirstThenCompletedOldest(t *testing.T) {
	t1 := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	goals := []models.Goal{
		{ID: "A", Progress: 100, CreatedAt: t1},
		{ID: "B", Progress: 50, CreatedAt: t2},
		{ID: "C", Progress: 100, CreatedAt: t3},
	}

	sorted := SortGoals(goals)
	want := []string{"B", "A", "C"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("order = %v, want %v", ids(sorted), want)
		}
	}
}

func TestSortGoals_MultipleIncomplete(t *testing.T) {
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	goals := []models.Goal{
		{ID: "old", Progress: 25, CreatedAt: base},
		{ID: "new", Progress: 75, CreatedAt: base.Add(time.Hour)},
	}

	sorted := SortGoals(goals)
	if sorted[0].ID != "new" {
		t.Errorf("order = %v, want newest incomplete first", ids(sorted))
	}
}

func TestReplaceGoals_RejectsEmptyingNonEmptyList(t *testing.T) {
	current := []models.Goal{{ID: "a"}}

	got, ok := ReplaceGoals(current, nil)
	if ok {
		t.Error("replacing a non-empty list with nil must be rejected")
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Error("rejected replace must leave the prior list unchanged")
	}

	got, ok = ReplaceGoals(current, []models.Goal{})
	if ok || len(got) != 1 {
		t.Error("replacing a non-empty list with an empty one must be rejected")
	}

	// An empty list may stay empty.
	if _, ok := ReplaceGoals(nil, nil); !ok {
		t.Error("empty-to-empty replace should be allowed")
	}
}

func TestArchiveThenRestoreHistory(t *testing.T) {
	history := models.CompletedDays{"2026-03-01": true, "2026-03-02": false}
	goals := []models.Goal{{ID: "g1", Title: "Read", CompletedDays: history}}
	archive := models.ArchivedGoals{}

	goals, archive, err := ArchiveGoal(goals, archive, "g1")
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if len(goals) != 0 {
		t.Fatal("archived goal still in active list")
	}

	fresh := models.Goal{ID: "g2", Title: "Read", CompletedDays: models.CompletedDays{}}
	fresh = RestoreHistory(fresh, archive)

	if len(fresh.CompletedDays) != 2 || !fresh.CompletedDays["2026-03-01"] || fresh.CompletedDays["2026-03-02"] {
		t.Errorf("restored history = %v, want the archived snapshot", fresh.CompletedDays)
	}

	// The archive entry is retained after restore.
	if _, ok := archive["Read"]; !ok {
		t.Error("archive entry should survive a restore")
	}
}

func TestArchiveGoal_OverwritesPriorSnapshot(t *testing.T) {
	archive := models.ArchivedGoals{"Read": {"2026-01-01": true}}
	goals := []models.Goal{{ID: "g1", Title: "Read", CompletedDays: models.CompletedDays{"2026-03-01": true}}}

	_, archive, err := ArchiveGoal(goals, archive, "g1")
	if err != nil {
		t.Fatalf("archive: %v", err)
	}

	snap := archive["Read"]
	if snap["2026-01-01"] || !snap["2026-03-01"] {
		t.Errorf("snapshot = %v, want the newer history", snap)
	}
}

func TestDeleteGoal_NoArchival(t *testing.T) {
	goals := []models.Goal{{ID: "g1", Title: "Read"}, {ID: "g2", Title: "Run"}}

	goals, err := DeleteGoal(goals, "g1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != "g2" {
		t.Errorf("goals after delete = %v", ids(goals))
	}

	if _, err := DeleteGoal(goals, "missing"); err == nil {
		t.Error("expected an error for an unknown goal id")
	}
}

func ids(goals []models.Goal) []string {
	out := make([]string, len(goals))
	for i, g := range goals {
		out[i] = g.ID
	}
	return out
}
