// Package game owns the live play session: one pet, its persistence, and the
// timers that keep the simulation moving. All shared mutable state lives
// behind the session's lock so no tick ever observes a half-updated pet.
package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/pet"
	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/report"
	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/sched"
	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/store"
)

// Timer cadences and task names
const (
	SleepCheckInterval      = 60 * time.Second
	CountdownInterval       = time.Second
	CooldownRefreshInterval = 30 * time.Second

	taskDecay           = "decay"
	taskSleepCheck      = "sleep-check"
	taskIdleEvent       = "idle-event"
	taskCountdown       = "countdown"
	taskCooldownRefresh = "cooldown-refresh"
	taskToyPenalty      = "toy-penalty"
)

// Session ties the pet, its care profile, the store, and the scheduler into
// a single owner. Every mutation saves synchronously before returning.
type Session struct {
	mu      sync.Mutex
	pet     *pet.Pet
	profile *pet.CareProfile
	store   store.Store
	sched   sched.Scheduler

	countdowns map[pet.ActionKind]time.Duration
}

// Open loads persisted state and reconciles it against the requested pet.
// A missing, corrupt, or mismatched record starts a fresh pet; an elapsed
// gap on a matching record is caught up in one bulk decay pass.
func Open(ctx context.Context, st store.Store, archetype pet.Archetype, name string) (*Session, error) {
	s := &Session{
		store:      st,
		profile:    pet.ProfileFor(archetype),
		countdowns: map[pet.ActionKind]time.Duration{},
	}

	rec, err := st.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.pet = pet.New(archetype, name)
	case err != nil:
		return nil, err
	case rec.Pet.Type != string(s.profile.Archetype) || rec.Pet.Name != name:
		slog.Info("persisted pet does not match, starting fresh",
			"saved_type", rec.Pet.Type, "saved_name", rec.Pet.Name,
			"want_type", s.profile.Archetype, "want_name", name)
		if err := st.Clear(ctx); err != nil {
			slog.Warn("could not clear stale save", "error", err)
		}
		s.pet = pet.New(archetype, name)
	default:
		s.pet = hydrate(rec, s.profile.Archetype)
		now := pet.TimeNow()
		if elapsed := now.Sub(rec.LastSaved); elapsed > 0 {
			s.pet.CatchUp(s.profile, elapsed, now)
		}
	}

	s.refreshCountdowns(pet.TimeNow())
	if err := s.saveLocked(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// StartTimers registers the recurring simulation tasks. The countdown task
// is started lazily when an action begins.
func (s *Session) StartTimers(scheduler sched.Scheduler) {
	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()

	scheduler.Every(taskDecay, pet.DecayTickInterval, s.onDecayTick)
	scheduler.Every(taskSleepCheck, SleepCheckInterval, s.onSleepCheck)
	scheduler.Every(taskIdleEvent, pet.IdleEventInterval, s.onIdleEvent)
	scheduler.Every(taskCooldownRefresh, CooldownRefreshInterval, s.onCooldownRefresh)
}

func (s *Session) onDecayTick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pet.ApplyDecayTick(s.profile, now)
	s.save()
}

func (s *Session) onSleepCheck(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pet.CheckSleep(s.profile, now) {
		s.save()
	}
}

func (s *Session) onIdleEvent(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pet.MaybeIdleEvent(now) {
		s.save()
	}
}

func (s *Session) onCooldownRefresh(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshCountdowns(now)
}

func (s *Session) onCountdownTick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	completed := s.pet.AdvanceRun(s.profile, now)
	if s.pet.Run == nil && s.sched != nil {
		s.sched.Cancel(taskCountdown)
	}
	if completed {
		if due := s.pet.ToyPenaltyDue; !due.IsZero() && s.sched != nil {
			s.sched.After(taskToyPenalty, due.Sub(now), s.onToyPenalty)
		}
		s.refreshCountdowns(now)
	}
	s.save()
}

func (s *Session) onToyPenalty(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pet.CheckToyPenalty(now) {
		s.save()
	}
}

// Attempt validates and starts a care action, returning the engine's result
// unchanged. On acceptance the 1s countdown task begins; its expiry is the
// only path to completion.
func (s *Session) Attempt(kind pet.ActionKind) pet.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := pet.TimeNow()
	res := s.pet.Attempt(s.profile, kind, now)
	if !res.OK {
		slog.Debug("action rejected", "kind", kind, "reason", res.Reason)
		return res
	}

	if s.sched != nil {
		s.sched.Every(taskCountdown, CountdownInterval, s.onCountdownTick)
	}
	s.save()
	return res
}

// Reset discards the current pet and all its satellites and adopts a new one.
// Every pending timer tied to the old pet is canceled first.
func (s *Session) Reset(ctx context.Context, archetype pet.Archetype, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sched != nil {
		s.sched.Cancel(taskCountdown)
		s.sched.Cancel(taskToyPenalty)
	}
	s.profile = pet.ProfileFor(archetype)
	s.pet = pet.New(archetype, name)
	s.refreshCountdowns(pet.TimeNow())
	return s.saveLocked(ctx)
}

// Close tears down all timers and the store. Pending delayed tasks die with
// the scheduler; none can fire against a discarded pet.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched != nil {
		s.sched.Stop()
	}
	s.save()
	return s.store.Close()
}

// Report builds a graded care report over the selected range. Pure read.
func (s *Session) Report(r report.Range) report.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return report.Build(report.Inputs{
		Current:    s.pet.Stats,
		Mood:       s.pet.Mood,
		Events:     append([]pet.Entry(nil), s.pet.Events...),
		TotalSpent: s.pet.TotalSpent,
		History:    append([]pet.Snapshot(nil), s.pet.History...),
		Range:      r,
		Now:        pet.TimeNow(),
	})
}

// View is an immutable snapshot of session state for presentation.
type View struct {
	Archetype  pet.Archetype
	Name       string
	Stats      pet.Stats
	Mood       pet.Mood
	Asleep     bool
	TotalSpent int
	HasToy     bool
	Events     []pet.Entry
	Countdowns map[pet.ActionKind]time.Duration

	RunKind      pet.ActionKind
	RunRemaining time.Duration
}

// Snapshot copies the state the UI renders from, under the lock.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Archetype:  s.pet.Archetype,
		Name:       s.pet.Name,
		Stats:      s.pet.Stats,
		Mood:       s.pet.Mood,
		Asleep:     s.pet.IsAsleep(),
		TotalSpent: s.pet.TotalSpent,
		HasToy:     s.pet.Ledger.HasToy,
		Events:     append([]pet.Entry(nil), s.pet.Events...),
		Countdowns: make(map[pet.ActionKind]time.Duration, len(s.countdowns)),
	}
	for k, d := range s.countdowns {
		v.Countdowns[k] = d
	}
	if s.pet.Run != nil {
		v.RunKind = s.pet.Run.Kind
		v.RunRemaining = s.pet.Run.Remaining(pet.TimeNow())
	}
	return v
}

func (s *Session) refreshCountdowns(now time.Time) {
	for _, kind := range []pet.ActionKind{
		pet.ActionFeed, pet.ActionWater, pet.ActionExercise,
		pet.ActionBath, pet.ActionGroom,
	} {
		s.countdowns[kind] = pet.TimeUntilNeeded(s.profile, s.pet, kind, now)
	}
}

// save persists synchronously and logs failures rather than propagating
// them; a failed write never halts the simulation.
func (s *Session) save() {
	if err := s.saveLocked(context.Background()); err != nil {
		slog.Error("save failed", "error", err)
	}
}

func (s *Session) saveLocked(ctx context.Context) error {
	return s.store.Save(ctx, dehydrate(s.pet))
}
