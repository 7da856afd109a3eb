// Package session owns a signed-in user's state. All mutations go through
// it: each one applies a pure engine transition, re-sorts the active list
// behind the empty-list guard, and schedules a debounced save.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kwheeler/goalpost/internal/autosave"
	"github.com/kwheeler/goalpost/internal/catalog"
	"github.com/kwheeler/goalpost/internal/engine"
	"github.com/kwheeler/goalpost/internal/models"
	"github.com/kwheeler/goalpost/internal/storage"
	"github.com/kwheeler/goalpost/internal/validation"
)

// ErrNoUser is returned when no user identity is configured; without one the
// engine is inert.
var ErrNoUser = errors.New("no user configured, set GOALPOST_USER")

// NotifyFunc receives non-fatal notices such as save failures.
type NotifyFunc func(format string, args ...any)

// Session methods may run concurrently with the autosave goroutine, so
// mu guards all access to state.
type Session struct {
	userID string
	store  storage.Provider
	mu     sync.Mutex
	state  models.UserState
	saver  *autosave.Saver
	notify NotifyFunc
	now    func() time.Time
	loaded bool
}

type Option func(*Session)

// WithClock injects the time source, for tests and the daily-reset check.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithDebounce overrides the save debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(s *Session) {
		s.saver = autosave.New(d, s.persist, s.onSaveError)
	}
}

// WithNotify sets where non-fatal notices go.
func WithNotify(f NotifyFunc) Option {
	return func(s *Session) { s.notify = f }
}

func New(userID string, store storage.Provider, opts ...Option) (*Session, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrNoUser
	}

	s := &Session{
		userID: userID,
		store:  store,
		notify: func(format string, args ...any) {},
		now:    time.Now,
	}
	s.saver = autosave.New(autosave.DefaultDelay, s.persist, s.onSaveError)

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) persist() error {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()
	return s.store.Save(s.userID, state)
}

func (s *Session) onSaveError(err error) {
	// In-memory state stays authoritative; the next mutation re-attempts.
	s.notify("save failed (changes kept in memory): %v", err)
}

// Load fetches the user's document. A missing document means first sign-in
// and yields a fresh empty state; any other storage error is surfaced rather
// than being conflated with absence.
func (s *Session) Load() error {
	state, err := s.store.Load(s.userID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to load state for %s: %w", s.userID, err)
		}
		state = models.NewUserState()
	}

	s.mu.Lock()
	s.state = state
	s.loaded = true
	s.mu.Unlock()

	s.EnsureDailyReset()
	return nil
}

func (s *Session) ensureLoaded() error {
	if !s.loaded {
		return fmt.Errorf("session not loaded")
	}
	return nil
}

// UserID returns the signed-in user's identifier.
func (s *Session) UserID() string {
	return s.userID
}

// State returns a snapshot of the current document.
func (s *Session) State() models.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Goals returns the active goal list in display order.
func (s *Session) Goals() []models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Goals
}

// CustomHabits returns the user's habit templates.
func (s *Session) CustomHabits() []models.CustomHabit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CustomHabits
}

// DayKey returns today's ledger key.
func (s *Session) DayKey() string {
	return engine.DayKey(s.now())
}

// EnsureDailyReset zeroes all goal progress when a calendar-day boundary has
// been crossed since the last reset. Safe to call repeatedly; it reports
// whether a reset ran.
func (s *Session) EnsureDailyReset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	should, next := engine.CheckReset(s.state.LastDailyReset, s.now())

	if should {
		s.state.Goals = engine.ApplyReset(s.state.Goals)
	}
	changed := should || !next.Equal(s.state.LastDailyReset)
	s.state.LastDailyReset = next

	if changed {
		s.replaceGoals(engine.SortGoals(s.state.Goals))
	}
	return should
}

// replaceGoals swaps the active list behind the empty-list guard and
// schedules a save. A rejected replace keeps the prior list and is logged
// only. Callers must hold mu.
func (s *Session) replaceGoals(next []models.Goal) {
	goals, ok := engine.ReplaceGoals(s.state.Goals, next)
	if !ok {
		s.notify("refusing to replace %d goals with an empty list", len(s.state.Goals))
	}
	s.state.Goals = goals
	s.saver.Schedule()
}

func (s *Session) newGoal(title, description, color string, totalSegments int) (models.Goal, error) {
	if err := validation.ValidateTitle(title); err != nil {
		return models.Goal{}, err
	}
	if err := validation.ValidateSegments(totalSegments); err != nil {
		return models.Goal{}, err
	}

	g := models.Goal{
		ID:            uuid.New().String(),
		Title:         title,
		Description:   description,
		Color:         color,
		TotalSegments: totalSegments,
		CompletedDays: models.CompletedDays{},
		CreatedAt:     s.now(),
	}

	// A previously archived goal with the same title donates its history.
	g = engine.RestoreHistory(g, s.state.ArchivedGoals)
	return g, nil
}

// AddGoal creates a goal from a catalog template and inserts it in sorted
// position.
func (s *Session) AddGoal(t catalog.Template) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return models.Goal{}, err
	}

	g, err := s.newGoal(t.Title, t.Description, t.Color, t.TotalSegments)
	if err != nil {
		return models.Goal{}, err
	}

	s.replaceGoals(engine.SortGoals(append(s.state.Goals, g)))
	return g, nil
}

// AddGoalFromCustomHabit instantiates a goal from one of the user's own
// templates.
func (s *Session) AddGoalFromCustomHabit(habitID string) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return models.Goal{}, err
	}

	for _, h := range s.state.CustomHabits {
		if h.ID == habitID {
			g, err := s.newGoal(h.Title, h.Description, h.Color, h.TotalSegments)
			if err != nil {
				return models.Goal{}, err
			}
			s.replaceGoals(engine.SortGoals(append(s.state.Goals, g)))
			return g, nil
		}
	}
	return models.Goal{}, fmt.Errorf("custom habit not found: %s", habitID)
}

func (s *Session) updateGoal(id string, fn func(models.Goal) (models.Goal, engine.Event)) (models.Goal, engine.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return models.Goal{}, engine.EventNone, err
	}

	for i, g := range s.state.Goals {
		if g.ID != id {
			continue
		}
		updated, ev := fn(g)

		next := make([]models.Goal, len(s.state.Goals))
		copy(next, s.state.Goals)
		next[i] = updated
		if ev != engine.EventNone {
			next = engine.SortGoals(next)
		}
		s.replaceGoals(next)
		return updated, ev, nil
	}
	return models.Goal{}, engine.EventNone, fmt.Errorf("goal not found: %s", id)
}

// Advance moves a goal forward one segment (or restarts it when complete).
func (s *Session) Advance(goalID string) (models.Goal, engine.Event, error) {
	day := s.DayKey()
	return s.updateGoal(goalID, func(g models.Goal) (models.Goal, engine.Event) {
		return engine.Advance(g, day)
	})
}

// Retreat moves a goal back one segment.
func (s *Session) Retreat(goalID string) (models.Goal, engine.Event, error) {
	return s.updateGoal(goalID, engine.Retreat)
}

// Archive snapshots a goal's history and removes it from the active list.
func (s *Session) Archive(goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}

	goals, archive, err := engine.ArchiveGoal(s.state.Goals, s.state.ArchivedGoals, goalID)
	if err != nil {
		return err
	}
	s.state.Goals = goals
	s.state.ArchivedGoals = archive
	s.saver.Schedule()
	return nil
}

// Delete removes a goal without archiving; its history is lost.
func (s *Session) Delete(goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}

	goals, err := engine.DeleteGoal(s.state.Goals, goalID)
	if err != nil {
		return err
	}
	s.state.Goals = goals
	s.saver.Schedule()
	return nil
}

// AddCustomHabit stores a new user-authored template.
func (s *Session) AddCustomHabit(title, description, color string, totalSegments int) (models.CustomHabit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return models.CustomHabit{}, err
	}
	if err := validation.ValidateTitle(title); err != nil {
		return models.CustomHabit{}, err
	}
	if err := validation.ValidateSegments(totalSegments); err != nil {
		return models.CustomHabit{}, err
	}

	h := models.CustomHabit{
		ID:            uuid.New().String(),
		Title:         title,
		Description:   description,
		Color:         color,
		TotalSegments: totalSegments,
	}
	s.state.CustomHabits = append(s.state.CustomHabits, h)
	s.saver.Schedule()
	return h, nil
}

// RemoveCustomHabit deletes a template. Goals created from it are unaffected.
func (s *Session) RemoveCustomHabit(habitID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}

	for i, h := range s.state.CustomHabits {
		if h.ID == habitID {
			s.state.CustomHabits = append(s.state.CustomHabits[:i], s.state.CustomHabits[i+1:]...)
			s.saver.Schedule()
			return nil
		}
	}
	return fmt.Errorf("custom habit not found: %s", habitID)
}

// FindGoal resolves a goal by exact id, id prefix, or case-insensitive title.
func (s *Session) FindGoal(query string) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return models.Goal{}, err
	}

	var prefix []models.Goal
	for _, g := range s.state.Goals {
		if g.ID == query {
			return g, nil
		}
		if strings.HasPrefix(g.ID, query) {
			prefix = append(prefix, g)
		}
	}
	if len(prefix) == 1 {
		return prefix[0], nil
	}
	if len(prefix) > 1 {
		return models.Goal{}, fmt.Errorf("goal id prefix %q is ambiguous", query)
	}

	for _, g := range s.state.Goals {
		if strings.EqualFold(g.Title, query) {
			return g, nil
		}
	}
	return models.Goal{}, fmt.Errorf("goal not found: %s", query)
}

// Flush forces any pending save to run now.
func (s *Session) Flush() error {
	return s.saver.Flush()
}

// Close flushes pending work and stops the autosaver.
func (s *Session) Close() error {
	return s.saver.Close()
}
