package pet

import (
	"fmt"
	"testing"
	"time"
)

var testBase = time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)

func newTestPet(t *testing.T) *Pet {
	t.Helper()
	mockTimeNow(t, testBase)
	return New(Dog, "Rex")
}

func TestNewPetStartsFromProfile(t *testing.T) {
	p := newTestPet(t)

	want := ProfileFor(Dog).InitialStats
	if p.Stats != want {
		t.Errorf("Stats = %+v, want %+v", p.Stats, want)
	}
	if p.Mood != MoodHappy {
		t.Errorf("Mood = %v, want %v", p.Mood, MoodHappy)
	}
	if len(p.Events) != 1 {
		t.Fatalf("len(Events) = %d, want 1", len(p.Events))
	}
	if len(p.History) != 1 {
		t.Fatalf("len(History) = %d, want 1", len(p.History))
	}
}

func TestEventLogCapNewestFirst(t *testing.T) {
	p := newTestPet(t)

	for i := 0; i < 30; i++ {
		p.AddEvent(fmt.Sprintf("event %d", i), "", testBase.Add(time.Duration(i)*time.Minute))
	}

	if len(p.Events) != MaxEventEntries {
		t.Fatalf("len(Events) = %d, want %d", len(p.Events), MaxEventEntries)
	}
	if p.Events[0].Message != "event 29" {
		t.Errorf("Events[0] = %q, want newest entry", p.Events[0].Message)
	}
	if p.Events[len(p.Events)-1].Message != "event 10" {
		t.Errorf("Events[last] = %q, want oldest surviving entry", p.Events[len(p.Events)-1].Message)
	}
}

func TestStatHistoryCapOldestFirst(t *testing.T) {
	p := newTestPet(t)

	for i := 0; i < 600; i++ {
		p.Stats.Happiness = float64(i % 100)
		p.RecordSnapshot(testBase.Add(time.Duration(i) * time.Minute))
	}

	if len(p.History) != MaxStatSnapshots {
		t.Fatalf("len(History) = %d, want %d", len(p.History), MaxStatSnapshots)
	}
	first, last := p.History[0], p.History[len(p.History)-1]
	if !first.Time.Before(last.Time) {
		t.Errorf("history not oldest-first: first %v, last %v", first.Time, last.Time)
	}
	if got := last.Time; !got.Equal(testBase.Add(599 * time.Minute)) {
		t.Errorf("last snapshot at %v, want newest", got)
	}
}
