package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/kwheeler/goalpost/internal/models"
)

type ConflictType string

const (
	ConflictDuplicateGoalID    ConflictType = "duplicate_goal_id"
	ConflictProgressOutOfRange ConflictType = "progress_out_of_range"
	ConflictProgressOffStep    ConflictType = "progress_off_step"
	ConflictCompletionMismatch ConflictType = "completion_mismatch"
)

type Conflict struct {
	Type    ConflictType
	Message string
	Items   []string
}

type ValidationResult struct {
	Conflicts []Conflict
}

func (r ValidationResult) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateTitle rejects empty or whitespace-only titles at construction time.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	return nil
}

// ValidateSegments rejects a non-positive segment count at construction time.
func ValidateSegments(totalSegments int) error {
	if totalSegments < 1 {
		return fmt.Errorf("total segments must be at least 1, got %d", totalSegments)
	}
	return nil
}

// ValidateState scans a loaded document for internal inconsistencies. Used by
// the doctor command; a conflict here means the document was corrupted or
// written by a buggy client.
func (v *Validator) ValidateState(state models.UserState) ValidationResult {
	var result ValidationResult

	seen := map[string]bool{}
	for _, g := range state.Goals {
		if seen[g.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:    ConflictDuplicateGoalID,
				Message: fmt.Sprintf("duplicate goal id %s", g.ID),
				Items:   []string{g.ID},
			})
		}
		seen[g.ID] = true

		if g.Progress < 0 || g.Progress > 100 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:    ConflictProgressOutOfRange,
				Message: fmt.Sprintf("goal %q has progress %v outside [0, 100]", g.Title, g.Progress),
				Items:   []string{g.ID},
			})
			continue
		}

		if g.TotalSegments > 0 {
			step := 100 / float64(g.TotalSegments)
			ratio := g.Progress / step
			if math.Abs(ratio-math.Round(ratio)) > 1e-6 {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:    ConflictProgressOffStep,
					Message: fmt.Sprintf("goal %q has progress %v which is not a multiple of %v", g.Title, g.Progress, step),
					Items:   []string{g.ID},
				})
			}
		}

		if g.IsCompleted != (g.Progress >= 100) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:    ConflictCompletionMismatch,
				Message: fmt.Sprintf("goal %q completion flag disagrees with progress %v", g.Title, g.Progress),
				Items:   []string{g.ID},
			})
		}
	}

	return result
}
