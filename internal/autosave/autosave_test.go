package autosave

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedule_CoalescesBursts(t *testing.T) {
	var saves atomic.Int32
	saver := New(30*time.Millisecond, func() error {
		saves.Add(1)
		return nil
	}, nil)

	for i := 0; i < 5; i++ {
		saver.Schedule()
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := saves.Load(); got != 1 {
		t.Errorf("saves = %d, want 1 (burst should coalesce)", got)
	}
}

func TestSchedule_ReschedulesAfterFire(t *testing.T) {
	var saves atomic.Int32
	saver := New(10*time.Millisecond, func() error {
		saves.Add(1)
		return nil
	}, nil)

	saver.Schedule()
	time.Sleep(50 * time.Millisecond)
	saver.Schedule()
	time.Sleep(50 * time.Millisecond)

	if got := saves.Load(); got != 2 {
		t.Errorf("saves = %d, want 2", got)
	}
}

func TestFlush_SavesImmediately(t *testing.T) {
	var saves atomic.Int32
	saver := New(time.Hour, func() error {
		saves.Add(1)
		return nil
	}, nil)

	saver.Schedule()
	if err := saver.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := saves.Load(); got != 1 {
		t.Errorf("saves = %d, want 1", got)
	}

	// Nothing pending: flush is a no-op.
	if err := saver.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := saves.Load(); got != 1 {
		t.Errorf("saves = %d after idle flush, want 1", got)
	}
}

func TestSaveErrorsGoToCallback(t *testing.T) {
	wantErr := errors.New("disk full")
	var notified atomic.Int32
	saver := New(5*time.Millisecond, func() error {
		return wantErr
	}, func(err error) {
		if errors.Is(err, wantErr) {
			notified.Add(1)
		}
	})

	saver.Schedule()
	time.Sleep(50 * time.Millisecond)
	if notified.Load() != 1 {
		t.Error("expected the save error to reach the callback")
	}
}

func TestClose_FlushesAndStops(t *testing.T) {
	var saves atomic.Int32
	saver := New(time.Hour, func() error {
		saves.Add(1)
		return nil
	}, nil)

	saver.Schedule()
	if err := saver.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if got := saves.Load(); got != 1 {
		t.Errorf("saves = %d, want 1 (close flushes)", got)
	}

	saver.Schedule()
	time.Sleep(20 * time.Millisecond)
	if got := saves.Load(); got != 1 {
		t.Error("schedule after close must be ignored")
	}
}
