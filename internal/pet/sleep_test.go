package pet

import (
	"testing"
	"time"
)

func TestSleepWindowContains(t *testing.T) {
	tests := []struct {
		name   string
		window SleepWindow
		hour   int
		want   bool
	}{
		{"crossing midnight, late evening", SleepWindow{22, 6}, 23, true},
		{"crossing midnight, after midnight", SleepWindow{22, 6}, 3, true},
		{"crossing midnight, at start", SleepWindow{22, 6}, 22, true},
		{"crossing midnight, at end", SleepWindow{22, 6}, 6, false},
		{"crossing midnight, midday", SleepWindow{22, 6}, 12, false},
		{"same-day window inside", SleepWindow{1, 9}, 5, true},
		{"same-day window outside", SleepWindow{1, 9}, 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.Contains(tt.hour); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.hour, got, tt.want)
			}
		})
	}
}

func TestCheckSleepEdgeTriggered(t *testing.T) {
	p := newTestPet(t)
	profile := ProfileFor(Dog) // sleeps 22-6

	night := time.Date(2024, 3, 1, 23, 0, 0, 0, time.Local)

	if !p.CheckSleep(profile, night) {
		t.Fatal("expected transition to asleep")
	}
	if !p.IsAsleep() {
		t.Fatal("pet should be asleep at 23:00")
	}
	if p.Mood != MoodSleeping {
		t.Errorf("Mood = %v, want %v", p.Mood, MoodSleeping)
	}
	if p.Events[0].Message != "Rex fell asleep" {
		t.Errorf("Events[0] = %q, want fell-asleep entry", p.Events[0].Message)
	}

	// Re-checking inside the window must not emit a second event.
	eventsBefore := len(p.Events)
	if p.CheckSleep(profile, night.Add(time.Minute)) {
		t.Error("repeat check inside window should be a no-op")
	}
	if len(p.Events) != eventsBefore {
		t.Error("duplicate sleep event emitted")
	}

	morning := time.Date(2024, 3, 2, 6, 0, 0, 0, time.Local)
	if !p.CheckSleep(profile, morning) {
		t.Fatal("expected transition to awake")
	}
	if p.IsAsleep() {
		t.Fatal("pet should be awake at 06:00")
	}
	if p.Events[0].Message != "Rex woke up" {
		t.Errorf("Events[0] = %q, want woke-up entry", p.Events[0].Message)
	}
}

func TestDaytimePredicateIndependentOfSleepFlag(t *testing.T) {
	p := newTestPet(t)
	w := SleepWindow{22, 6}

	// The pet can be flagged asleep while the minute-of-day says daytime;
	// the two derivations are allowed to disagree.
	p.Asleep = testBase
	if !daytimeByMinute(w, time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)) {
		t.Error("12:30 should be daytime")
	}
	if daytimeByMinute(w, time.Date(2024, 3, 1, 23, 30, 0, 0, time.Local)) {
		t.Error("23:30 should not be daytime")
	}
	if daytimeByMinute(w, time.Date(2024, 3, 1, 3, 0, 0, 0, time.Local)) {
		t.Error("03:00 should not be daytime")
	}
}

func TestRemainingSleep(t *testing.T) {
	w := SleepWindow{22, 6}
	now := time.Date(2024, 3, 1, 23, 0, 0, 0, time.Local)
	if got := remainingSleep(w, now); got != 7*time.Hour {
		t.Errorf("remainingSleep at 23:00 = %v, want 7h", got)
	}

	after := time.Date(2024, 3, 2, 5, 0, 0, 0, time.Local)
	if got := remainingSleep(w, after); got != time.Hour {
		t.Errorf("remainingSleep at 05:00 = %v, want 1h", got)
	}
}
