package engine

import (
	"math"

	"github.com/kwheeler/goalpost/internal/models"
)

// Event reports a completion-state change caused by a transition. Callers
// re-sort the goal list when an event fires.
type Event int

const (
	EventNone Event = iota
	EventCompleted
	EventUncompleted
)

// Step returns the progress value of one segment.
func Step(g models.Goal) float64 {
	if g.TotalSegments <= 0 {
		return 100
	}
	return 100 / float64(g.TotalSegments)
}

// segmentsDone converts a progress percentage back to a whole segment count.
// Progress is always written as count*step, so rounding undoes any float
// drift from non-divisible segment counts.
func segmentsDone(g models.Goal) int {
	step := Step(g)
	return int(math.Round(g.Progress / step))
}

// Advance moves a goal forward by one segment for the given day.
//
// When the goal is already at 100%, the call restarts it instead: progress
// drops to 0 and the day's completion entry is cleared. The goal is not
// re-incremented in the same call; a further Advance begins refilling.
func Advance(g models.Goal, dayKey string) (models.Goal, Event) {
	if g.Progress >= 100 {
		g.Progress = 0
		g.IsCompleted = false
		days := g.CompletedDays.Clone()
		delete(days, dayKey)
		g.CompletedDays = days
		return g, EventUncompleted
	}

	done := segmentsDone(g) + 1
	if done >= g.TotalSegments {
		g.Progress = 100
		g.IsCompleted = true
		days := g.CompletedDays.Clone()
		days[dayKey] = true
		g.CompletedDays = days
		return g, EventCompleted
	}

	g.Progress = float64(done) * Step(g)
	g.IsCompleted = false
	return g, EventNone
}

// Retreat moves a goal back by one segment. The completed-day ledger is never
// modified here; only Advance's restart path clears an entry.
func Retreat(g models.Goal) (models.Goal, Event) {
	wasComplete := g.Progress >= 100

	done := segmentsDone(g) - 1
	if done <= 0 {
		g.Progress = 0
	} else {
		g.Progress = float64(done) * Step(g)
	}
	g.IsCompleted = false

	if wasComplete && g.Progress < 100 {
		return g, EventUncompleted
	}
	return g, EventNone
}
