package pet

import (
	"fmt"
	"log/slog"
	"time"
)

// Buffer caps
const (
	MaxEventEntries  = 20
	MaxStatSnapshots = 500
)

// Entry is one event-log line. Kind tags the care action that produced the
// entry ("" for ambient events) so downstream consumers are not forced to
// parse the message text.
type Entry struct {
	Message string     `json:"message"`
	Kind    ActionKind `json:"kind,omitempty"`
	Time    time.Time  `json:"time"`
}

// Snapshot records the stat vector at a point in time.
type Snapshot struct {
	Time  time.Time `json:"time"`
	Stats Stats     `json:"stats"`
}

// CooldownLedger holds last-completion stamps and ownership counters used to
// gate actions and project countdowns.
type CooldownLedger struct {
	LastWalkTime      time.Time       `json:"last_walk_time"`
	LastBathTime      time.Time       `json:"last_bath_time"`
	LastTrimNailsTime time.Time       `json:"last_trim_nails_time"`
	FeedCount         int             `json:"feed_count"`
	HasToy            bool            `json:"has_toy"`
	InitialPurchases  map[string]bool `json:"initial_purchases,omitempty"`
}

// Pet is the sole mutable subject of every decay tick, sleep transition, and
// care action. It owns its satellites (ledger, event log, stat history); all
// are discarded together on reset.
type Pet struct {
	Archetype Archetype `json:"archetype"`
	Name      string    `json:"name"` // immutable after creation
	Stats     Stats     `json:"stats"`
	Mood      Mood      `json:"mood"`

	Asleep       time.Time `json:"asleep,omitempty"` // zero = awake; else sleep-onset time
	HungerAtDoze float64   `json:"hunger_at_doze,omitempty"`
	ThirstAtDoze float64   `json:"thirst_at_doze,omitempty"`

	TotalSpent int            `json:"total_spent"`
	Ledger     CooldownLedger `json:"ledger"`

	Events  []Entry    `json:"events,omitempty"`  // newest first, ≤20
	History []Snapshot `json:"history,omitempty"` // oldest first, ≤500

	Run *ActionRun `json:"-"` // at most one action in progress

	// Pending toy-break penalty; zero when none is scheduled.
	ToyPenaltyDue time.Time `json:"toy_penalty_due,omitempty"`

	LastAmbientTick time.Time `json:"last_ambient_tick,omitempty"`
}

// New creates a fresh pet from its archetype profile.
func New(archetype Archetype, name string) *Pet {
	profile := ProfileFor(archetype)
	p := &Pet{
		Archetype: profile.Archetype,
		Name:      name,
		Stats:     profile.InitialStats,
		Ledger:    CooldownLedger{InitialPurchases: map[string]bool{}},
	}
	p.Stats.Clamp()
	p.Mood = DeriveMood(p.Stats.Happiness, false)
	now := TimeNow()
	p.AddEvent(fmt.Sprintf("%s joined the family!", name), "", now)
	p.RecordSnapshot(now)
	slog.Info("created pet", "archetype", p.Archetype, "name", p.Name)
	return p
}

// IsAsleep reports the sleep-cycle state.
func (p *Pet) IsAsleep() bool { return !p.Asleep.IsZero() }

// AddEvent prepends an event-log entry, evicting the oldest beyond the cap.
func (p *Pet) AddEvent(message string, kind ActionKind, now time.Time) {
	p.Events = append([]Entry{{Message: message, Kind: kind, Time: now}}, p.Events...)
	if len(p.Events) > MaxEventEntries {
		p.Events = p.Events[:MaxEventEntries]
	}
}

// RecordSnapshot appends the current stats to the history ring.
func (p *Pet) RecordSnapshot(now time.Time) {
	p.History = append(p.History, Snapshot{Time: now, Stats: p.Stats})
	if len(p.History) > MaxStatSnapshots {
		p.History = p.History[len(p.History)-MaxStatSnapshots:]
	}
}

// refreshMood recomputes the derived mood from its inputs.
func (p *Pet) refreshMood() {
	p.Mood = DeriveMood(p.Stats.Happiness, p.IsAsleep())
}
