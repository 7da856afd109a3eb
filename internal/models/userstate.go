package models

import "time"

// UserState is the single persisted document per user. It is loaded in full
// on session start and saved in full on any mutation; there are no partial
// updates server-side.
type UserState struct {
	Goals          []Goal        `json:"goals"`
	ArchivedGoals  ArchivedGoals `json:"archived_goals"`
	CustomHabits   []CustomHabit `json:"custom_habits"`
	LastDailyReset time.Time     `json:"last_daily_reset"`
}

// NewUserState returns an empty state with initialized collections.
func NewUserState() UserState {
	return UserState{
		Goals:         []Goal{},
		ArchivedGoals: ArchivedGoals{},
		CustomHabits:  []CustomHabit{},
	}
}

// Normalize ensures collections deserialized from older or hand-edited
// documents are non-nil.
func (s *UserState) Normalize() {
	if s.Goals == nil {
		s.Goals = []Goal{}
	}
	if s.ArchivedGoals == nil {
		s.ArchivedGoals = ArchivedGoals{}
	}
	if s.CustomHabits == nil {
		s.CustomHabits = []CustomHabit{}
	}
}
