// Package sched replaces ad hoc repeating callbacks with named, cancelable
// tasks so the simulation's timers can be torn down as a unit and tests can
// advance logical time deterministically.
package sched

import (
	"log/slog"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// TaskFunc runs when a task fires. The fire time is passed in so task bodies
// never reach for the wall clock themselves.
type TaskFunc func(now time.Time)

// Scheduler owns a set of named periodic and one-shot tasks.
type Scheduler interface {
	// Every registers a recurring task, replacing any task with the same name.
	Every(name string, interval time.Duration, fn TaskFunc)
	// After registers a one-shot task, replacing any task with the same name.
	After(name string, delay time.Duration, fn TaskFunc)
	// Cancel removes a task by name. Unknown names are ignored.
	Cancel(name string)
	// Stop cancels every task. The scheduler is unusable afterwards.
	Stop()
}

// TickerScheduler runs each task on its own time.Ticker goroutine. Task
// bodies are expected to take a lock on shared state; the scheduler itself
// guarantees only that a canceled task never fires again.
type TickerScheduler struct {
	mu      sync.Mutex
	tasks   map[string]chan struct{}
	stopped atomic.Bool
}

// NewTicker creates an empty wall-clock scheduler.
func NewTicker() *TickerScheduler {
	return &TickerScheduler{tasks: make(map[string]chan struct{})}
}

func (s *TickerScheduler) Every(name string, interval time.Duration, fn TaskFunc) {
	if s.stopped.Load() {
		return
	}
	stop := s.register(name)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case t := <-ticker.C:
				fn(t)
			case <-stop:
				return
			}
		}
	}()
}

func (s *TickerScheduler) After(name string, delay time.Duration, fn TaskFunc) {
	if s.stopped.Load() {
		return
	}
	stop := s.register(name)
	go func() {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case t := <-timer.C:
			s.Cancel(name)
			fn(t)
		case <-stop:
		}
	}()
}

func (s *TickerScheduler) register(name string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.tasks[name]; ok {
		close(old)
	}
	stop := make(chan struct{})
	s.tasks[name] = stop
	return stop
}

func (s *TickerScheduler) Cancel(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stop, ok := s.tasks[name]; ok {
		close(stop)
		delete(s.tasks, name)
	}
}

func (s *TickerScheduler) Stop() {
	if !s.stopped.CompareAndSwap(false, true) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, stop := range s.tasks {
		close(stop)
		delete(s.tasks, name)
	}
	slog.Debug("scheduler stopped")
}

// ManualScheduler fires tasks only when Advance moves its logical clock.
// Tasks run inline on the advancing goroutine, in fire-time order, so tests
// are fully deterministic.
type ManualScheduler struct {
	now   time.Time
	tasks map[string]*manualTask
}

type manualTask struct {
	name      string
	interval  time.Duration // zero for one-shot
	nextFire  time.Time
	fn        TaskFunc
}

// NewManual creates a logical-time scheduler starting at the given instant.
func NewManual(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start, tasks: make(map[string]*manualTask)}
}

// Now returns the current logical time.
func (s *ManualScheduler) Now() time.Time { return s.now }

func (s *ManualScheduler) Every(name string, interval time.Duration, fn TaskFunc) {
	s.tasks[name] = &manualTask{name: name, interval: interval, nextFire: s.now.Add(interval), fn: fn}
}

func (s *ManualScheduler) After(name string, delay time.Duration, fn TaskFunc) {
	s.tasks[name] = &manualTask{name: name, nextFire: s.now.Add(delay), fn: fn}
}

func (s *ManualScheduler) Cancel(name string) {
	delete(s.tasks, name)
}

func (s *ManualScheduler) Stop() {
	s.tasks = make(map[string]*manualTask)
}

// Advance moves logical time forward, firing every due task in order. A
// periodic task may fire multiple times within one advance.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now.Add(d)
	for {
		next := s.earliest(target)
		if next == nil {
			break
		}
		s.now = next.nextFire
		if next.interval > 0 {
			next.nextFire = next.nextFire.Add(next.interval)
		} else {
			delete(s.tasks, next.name)
		}
		next.fn(s.now)
	}
	s.now = target
}

func (s *ManualScheduler) earliest(limit time.Time) *manualTask {
	var best *manualTask
	for _, t := range s.tasks {
		if t.nextFire.After(limit) {
			continue
		}
		if best == nil || t.nextFire.Before(best.nextFire) ||
			(t.nextFire.Equal(best.nextFire) && t.name < best.name) {
			best = t
		}
	}
	return best
}
