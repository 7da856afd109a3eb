package engine

import (
	"fmt"
	"sort"

	"github.com/kwheeler/goalpost/internal/models"
)

// SortGoals returns the list in display order: incomplete goals first, newest
// created on top; completed goals after, oldest completed first.
func SortGoals(goals []models.Goal) []models.Goal {
	out := make([]models.Goal, len(goals))
	copy(out, goals)
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := out[i].Progress >= 100, out[j].Progress >= 100
		if ci != cj {
			return !ci
		}
		if ci {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ReplaceGoals swaps the active list for next. Replacing a non-empty list
// with an empty one is rejected and the current list is returned unchanged;
// this guards against a buggy update path wiping a user's goals.
func ReplaceGoals(current, next []models.Goal) ([]models.Goal, bool) {
	if len(next) == 0 && len(current) > 0 {
		return current, false
	}
	return next, true
}

// RestoreHistory copies an archived completed-day snapshot onto a freshly
// created goal when one exists for its title. The archive entry is kept; a
// later re-archive of the same title overwrites it.
func RestoreHistory(g models.Goal, archive models.ArchivedGoals) models.Goal {
	if days, ok := archive[g.Title]; ok {
		g.CompletedDays = days.Clone()
	}
	return g
}

// ArchiveGoal snapshots the goal's completed-day history under its title,
// overwriting any prior snapshot, and removes it from the active list.
func ArchiveGoal(goals []models.Goal, archive models.ArchivedGoals, id string) ([]models.Goal, models.ArchivedGoals, error) {
	idx := indexOf(goals, id)
	if idx < 0 {
		return goals, archive, fmt.Errorf("goal not found: %s", id)
	}

	out := make(models.ArchivedGoals, len(archive)+1)
	for k, v := range archive {
		out[k] = v
	}
	g := goals[idx]
	out[g.Title] = g.CompletedDays.Clone()

	return removeAt(goals, idx), out, nil
}

// DeleteGoal removes a goal with no archival; its history is lost.
func DeleteGoal(goals []models.Goal, id string) ([]models.Goal, error) {
	idx := indexOf(goals, id)
	if idx < 0 {
		return goals, fmt.Errorf("goal not found: %s", id)
	}
	return removeAt(goals, idx), nil
}

func indexOf(goals []models.Goal, id string) int {
	for i, g := range goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func removeAt(goals []models.Goal, idx int) []models.Goal {
	out := make([]models.Goal, 0, len(goals)-1)
	out = append(out, goals[:idx]...)
	return append(out, goals[idx+1:]...)
}
