package models

import "time"

// CompletedDays maps a local date key (YYYY-MM-DD) to whether the goal hit
// 100% on that day. It is a historical ledger: daily resets never touch it.
type CompletedDays map[string]bool

// Clone returns an independent copy so transition functions can modify a
// goal's history without aliasing the original map.
func (c CompletedDays) Clone() CompletedDays {
	if c == nil {
		return CompletedDays{}
	}
	out := make(CompletedDays, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Goal is an active, in-progress instantiation of a habit being tracked.
type Goal struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	Color         string        `json:"color,omitempty"`
	Progress      float64       `json:"progress"`
	TotalSegments int           `json:"total_segments"`
	IsCompleted   bool          `json:"is_completed"`
	CompletedDays CompletedDays `json:"completed_days"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ArchivedGoals maps a goal title to the completed-day history it had when it
// was removed from the active list. Entries outlive the goal so the history
// can be restored if the same habit is re-added.
type ArchivedGoals map[string]CompletedDays

// CustomHabit is a user-authored template. A Goal is instantiated from it but
// keeps no reference back to it.
type CustomHabit struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Color         string `json:"color,omitempty"`
	TotalSegments int    `json:"total_segments"`
}
