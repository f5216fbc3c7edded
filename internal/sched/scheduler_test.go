package sched

import (
	"testing"
	"time"
)

var schedBase = time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)

func TestManualEveryFiresInOrder(t *testing.T) {
	s := NewManual(schedBase)

	var fired []string
	s.Every("fast", 10*time.Second, func(now time.Time) { fired = append(fired, "fast") })
	s.Every("slow", 25*time.Second, func(now time.Time) { fired = append(fired, "slow") })

	s.Advance(30 * time.Second)

	want := []string{"fast", "fast", "slow", "fast"}
	if len(fired) != len(want) {
		t.Fatalf("fired = %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("fired = %v, want %v", fired, want)
		}
	}
	if !s.Now().Equal(schedBase.Add(30 * time.Second)) {
		t.Errorf("Now() = %v, want advanced 30s", s.Now())
	}
}

func TestManualSimultaneousFiresBreakTiesByName(t *testing.T) {
	s := NewManual(schedBase)

	var fired []string
	s.Every("b-task", 10*time.Second, func(now time.Time) { fired = append(fired, "b") })
	s.Every("a-task", 10*time.Second, func(now time.Time) { fired = append(fired, "a") })

	s.Advance(10 * time.Second)

	if len(fired) != 2 || fired[0] != "a" || fired[1] != "b" {
		t.Errorf("fired = %v, want name order [a b]", fired)
	}
}

func TestManualAfterFiresOnce(t *testing.T) {
	s := NewManual(schedBase)

	count := 0
	var at time.Time
	s.After("once", 45*time.Second, func(now time.Time) { count++; at = now })

	s.Advance(time.Minute)
	s.Advance(time.Minute)

	if count != 1 {
		t.Fatalf("one-shot fired %d times", count)
	}
	if !at.Equal(schedBase.Add(45 * time.Second)) {
		t.Errorf("fired at %v, want the exact delay", at)
	}
}

func TestManualCancelStopsFiring(t *testing.T) {
	s := NewManual(schedBase)

	count := 0
	s.Every("ticker", 10*time.Second, func(now time.Time) { count++ })
	s.Advance(10 * time.Second)
	s.Cancel("ticker")
	s.Cancel("never-registered")
	s.Advance(time.Minute)

	if count != 1 {
		t.Errorf("count = %d after cancel, want 1", count)
	}
}

func TestManualReplaceByName(t *testing.T) {
	s := NewManual(schedBase)

	var fired []string
	s.Every("tick", 10*time.Second, func(now time.Time) { fired = append(fired, "old") })
	s.Every("tick", 20*time.Second, func(now time.Time) { fired = append(fired, "new") })

	s.Advance(20 * time.Second)

	if len(fired) != 1 || fired[0] != "new" {
		t.Errorf("fired = %v, want the replacement only", fired)
	}
}

func TestManualTaskFnSeesFireTimeNotTargetTime(t *testing.T) {
	s := NewManual(schedBase)

	var seen []time.Time
	s.Every("tick", 10*time.Second, func(now time.Time) { seen = append(seen, now) })
	s.Advance(25 * time.Second)

	if len(seen) != 2 {
		t.Fatalf("fired %d times, want 2", len(seen))
	}
	if !seen[0].Equal(schedBase.Add(10*time.Second)) || !seen[1].Equal(schedBase.Add(20*time.Second)) {
		t.Errorf("fire times = %v, want exact tick instants", seen)
	}
}

func TestTickerAfterFiresAndExpires(t *testing.T) {
	s := NewTicker()
	defer s.Stop()

	done := make(chan time.Time, 1)
	s.After("blip", 10*time.Millisecond, func(now time.Time) { done <- now })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("one-shot never fired")
	}
}

func TestTickerCancelPreventsFiring(t *testing.T) {
	s := NewTicker()
	defer s.Stop()

	fired := make(chan struct{}, 1)
	s.After("blip", 50*time.Millisecond, func(now time.Time) { fired <- struct{}{} })
	s.Cancel("blip")

	select {
	case <-fired:
		t.Fatal("canceled task fired")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestTickerStopRejectsNewTasks(t *testing.T) {
	s := NewTicker()
	s.Stop()
	s.Stop() // idempotent

	fired := make(chan struct{}, 1)
	s.Every("late", time.Millisecond, func(now time.Time) { fired <- struct{}{} })

	select {
	case <-fired:
		t.Fatal("task registered after Stop fired")
	case <-time.After(50 * time.Millisecond):
	}
}
