package engine

import (
	"time"

	"github.com/kwheeler/goalpost/internal/models"
)

// DayKeyFormat is the local date key used by the completed-day ledger.
const DayKeyFormat = "2006-01-02"

// DayKey returns the ledger key for the given instant's local calendar day.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// Midnight truncates an instant to the start of its local calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CheckReset reports whether a day boundary has been crossed since the last
// reset and the reset timestamp the caller should record.
//
// A zero lastReset means a first run: the timestamp is initialized to today's
// midnight without performing a reset. Repeated calls within the same day
// after a reset report false, so the check is idempotent.
func CheckReset(lastReset, now time.Time) (bool, time.Time) {
	midnight := Midnight(now)
	if lastReset.IsZero() {
		return false, midnight
	}
	if lastReset.Before(midnight) {
		return true, midnight
	}
	return false, lastReset
}

// ApplyReset zeroes every goal's progress for a new day. The completed-day
// ledgers are history and stay untouched.
func ApplyReset(goals []models.Goal) []models.Goal {
	out := make([]models.Goal, len(goals))
	for i, g := range goals {
		g.Progress = 0
		g.IsCompleted = false
		out[i] = g
	}
	return out
}
