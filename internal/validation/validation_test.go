package validation

import (
	"testing"

	"github.com/kwheeler/goalpost/internal/models"
)

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle("Read"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateTitle("   "); err == nil {
		t.Error("expected error for whitespace title")
	}
	if err := ValidateTitle(""); err == nil {
		t.Error("expected error for empty title")
	}
}

func TestValidateSegments(t *testing.T) {
	if err := ValidateSegments(1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateSegments(0); err == nil {
		t.Error("expected error for zero segments")
	}
	if err := ValidateSegments(-3); err == nil {
		t.Error("expected error for negative segments")
	}
}

func TestValidateState_DuplicateIDs(t *testing.T) {
	validator := New()

	state := models.UserState{Goals: []models.Goal{
		{ID: "1", Title: "A", TotalSegments: 1},
		{ID: "1", Title: "B", TotalSegments: 1},
	}}

	result := validator.ValidateState(state)
	if !result.HasConflicts() {
		t.Fatal("expected to detect duplicate goal ids")
	}
	if result.Conflicts[0].Type != ConflictDuplicateGoalID {
		t.Errorf("conflict type = %s", result.Conflicts[0].Type)
	}
}

func TestValidateState_ProgressChecks(t *testing.T) {
	validator := New()

	state := models.UserState{Goals: []models.Goal{
		{ID: "1", Title: "over", TotalSegments: 1, Progress: 120},
		{ID: "2", Title: "off-step", TotalSegments: 4, Progress: 30},
		{ID: "3", Title: "flag", TotalSegments: 1, Progress: 100, IsCompleted: false},
		{ID: "4", Title: "ok", TotalSegments: 4, Progress: 75},
	}}

	result := validator.ValidateState(state)

	types := map[ConflictType]int{}
	for _, c := range result.Conflicts {
		types[c.Type]++
	}
	if types[ConflictProgressOutOfRange] != 1 {
		t.Errorf("out-of-range conflicts = %d, want 1", types[ConflictProgressOutOfRange])
	}
	if types[ConflictProgressOffStep] != 1 {
		t.Errorf("off-step conflicts = %d, want 1", types[ConflictProgressOffStep])
	}
	if types[ConflictCompletionMismatch] != 1 {
		t.Errorf("completion-mismatch conflicts = %d, want 1", types[ConflictCompletionMismatch])
	}
}
