// Package autosave provides the debounced-save task: a burst of mutations
// collapses into one save shortly after the last change.
package autosave

import (
	"sync"
	"time"
)

// DefaultDelay matches the half-second debounce the UI expects.
const DefaultDelay = 500 * time.Millisecond

// Saver schedules a save to run no sooner than delay after the most recent
// Schedule call. A new call while a save is pending pushes it back. Save
// errors are reported through onError and never retried automatically; the
// next mutation schedules a fresh attempt.
type Saver struct {
	mu      sync.Mutex
	delay   time.Duration
	save    func() error
	onError func(error)
	timer   *time.Timer
	pending bool
	closed  bool
}

func New(delay time.Duration, save func() error, onError func(error)) *Saver {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if onError == nil {
		onError = func(error) {}
	}
	return &Saver{
		delay:   delay,
		save:    save,
		onError: onError,
	}
}

// Schedule records a pending save and (re)starts the debounce timer.
func (s *Saver) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.pending = true

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

func (s *Saver) fire() {
	s.mu.Lock()
	if s.closed || !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.mu.Unlock()

	if err := s.save(); err != nil {
		s.onError(err)
	}
}

// Flush cancels any pending timer and saves immediately if a save is due.
func (s *Saver) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	due := s.pending && !s.closed
	s.pending = false
	s.mu.Unlock()

	if !due {
		return nil
	}
	return s.save()
}

// Close flushes any pending save and stops the saver for good.
func (s *Saver) Close() error {
	err := s.Flush()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	return err
}
