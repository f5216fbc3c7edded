package pet

import (
	"log/slog"
	"time"
)

// Archetype is the closed set of pet species.
type Archetype string

const (
	Dog    Archetype = "dog"
	Cat    Archetype = "cat"
	Parrot Archetype = "parrot"
	Rabbit Archetype = "rabbit"
)

// Archetypes lists every valid archetype.
func Archetypes() []Archetype {
	return []Archetype{Dog, Cat, Parrot, Rabbit}
}

// ActionKind identifies a care action.
type ActionKind string

const (
	ActionFeed     ActionKind = "feed"
	ActionWater    ActionKind = "water"
	ActionExercise ActionKind = "exercise"
	ActionPlay     ActionKind = "play"
	ActionBath     ActionKind = "bath"
	ActionGroom    ActionKind = "groom"
	ActionVetVisit ActionKind = "vet_visit"
	ActionBuyToy   ActionKind = "buy_toy"
)

// ActionSpec parameterizes one care action for one archetype.
type ActionSpec struct {
	Cost     int           // currency units charged on acceptance
	Duration time.Duration // nominal in-progress time
	Deltas   Stats         // signed stat changes applied on completion

	// Policy fields; zero values mean "not applicable to this kind".
	TriggerThreshold float64       // reject if the gating stat is at/above this
	MinEnergy        float64       // reject if energy is below this
	Cooldown         time.Duration // minimum interval between completions
	RequiresToy      bool          // play only
}

// DecayRates expresses minutes (hours for hygiene) per 1% of ambient loss.
type DecayRates struct {
	HungerMins    float64
	ThirstMins    float64
	HappinessMins float64
	HygieneHours  float64
	EnergyMins    float64 // daytime drain only
}

// SleepWindow is the nightly sleep span in local hours; End < Start means the
// window crosses midnight.
type SleepWindow struct {
	StartHour int
	EndHour   int
}

// Contains reports whether the given hour-of-day falls inside the window.
func (w SleepWindow) Contains(hour int) bool {
	if w.StartHour > w.EndHour {
		return hour >= w.StartHour || hour < w.EndHour
	}
	return hour >= w.StartHour && hour < w.EndHour
}

// CareProfile is the immutable per-archetype configuration. Swapping the
// profile alone changes behavior everywhere; no component hardcodes rates.
type CareProfile struct {
	Archetype    Archetype
	Rates        DecayRates
	Sleep        SleepWindow
	InitialStats Stats
	Actions      map[ActionKind]ActionSpec
}

// Dog feed economics: the first FreeFeedCount lifetime feeds cost nothing;
// afterwards each feed carries a flat surcharge and a restock delay.
const (
	FreeFeedCount        = 120
	FeedSurcharge        = 5
	FeedRestockExtension = 10 * time.Second
)

func baseActions() map[ActionKind]ActionSpec {
	return map[ActionKind]ActionSpec{
		ActionFeed: {
			Cost:             2,
			Duration:         10 * time.Second,
			Deltas:           Stats{Hunger: 40, Happiness: 5},
			TriggerThreshold: 70,
		},
		ActionWater: {
			Duration:         5 * time.Second,
			Deltas:           Stats{Thirst: 50},
			TriggerThreshold: 75,
		},
		ActionExercise: {
			Duration:  30 * time.Second,
			Deltas:    Stats{Happiness: 15, Energy: -15, Hunger: -5, Hygiene: -5},
			MinEnergy: 25,
			Cooldown:  4 * time.Hour,
		},
		ActionPlay: {
			Duration:    20 * time.Second,
			Deltas:      Stats{Happiness: 20, Energy: -10},
			MinEnergy:   20,
			RequiresToy: true,
		},
		ActionBath: {
			Cost:             3,
			Duration:         25 * time.Second,
			Deltas:           Stats{Hygiene: 60, Happiness: -5},
			TriggerThreshold: 50,
			Cooldown:         24 * time.Hour,
		},
		ActionGroom: {
			Cost:             4,
			Duration:         15 * time.Second,
			Deltas:           Stats{Hygiene: 20, Happiness: 5},
			TriggerThreshold: 60,
			Cooldown:         72 * time.Hour,
		},
		ActionVetVisit: {
			Cost:     20,
			Duration: 40 * time.Second,
			Deltas:   Stats{Hunger: 5, Thirst: 5, Happiness: 10, Hygiene: 10, Energy: 10},
		},
		ActionBuyToy: {
			Cost:     10,
			Duration: 3 * time.Second,
		},
	}
}

func withActions(mutate func(map[ActionKind]ActionSpec)) map[ActionKind]ActionSpec {
	actions := baseActions()
	if mutate != nil {
		mutate(actions)
	}
	return actions
}

var profiles = map[Archetype]*CareProfile{
	Dog: {
		Archetype:    Dog,
		Rates:        DecayRates{HungerMins: 12, ThirstMins: 10, HappinessMins: 15, HygieneHours: 8, EnergyMins: 20},
		Sleep:        SleepWindow{StartHour: 22, EndHour: 6},
		InitialStats: Stats{Hunger: 90, Thirst: 90, Happiness: 85, Hygiene: 90, Energy: 95},
		Actions: withActions(func(a map[ActionKind]ActionSpec) {
			// Dog feed is free until the kibble bag runs out; see applyFeedOverride.
			feed := a[ActionFeed]
			feed.Cost = 0
			a[ActionFeed] = feed
		}),
	},
	Cat: {
		Archetype:    Cat,
		Rates:        DecayRates{HungerMins: 15, ThirstMins: 12, HappinessMins: 20, HygieneHours: 12, EnergyMins: 18},
		Sleep:        SleepWindow{StartHour: 21, EndHour: 7},
		InitialStats: Stats{Hunger: 85, Thirst: 90, Happiness: 80, Hygiene: 95, Energy: 90},
		Actions:      withActions(nil),
	},
	Parrot: {
		Archetype:    Parrot,
		Rates:        DecayRates{HungerMins: 10, ThirstMins: 8, HappinessMins: 12, HygieneHours: 10, EnergyMins: 22},
		Sleep:        SleepWindow{StartHour: 20, EndHour: 6},
		InitialStats: Stats{Hunger: 90, Thirst: 85, Happiness: 90, Hygiene: 85, Energy: 90},
		Actions: withActions(func(a map[ActionKind]ActionSpec) {
			// Parrots entertain themselves without a toy.
			play := a[ActionPlay]
			play.RequiresToy = false
			a[ActionPlay] = play
		}),
	},
	Rabbit: {
		Archetype:    Rabbit,
		Rates:        DecayRates{HungerMins: 8, ThirstMins: 9, HappinessMins: 14, HygieneHours: 9, EnergyMins: 16},
		Sleep:        SleepWindow{StartHour: 23, EndHour: 7},
		InitialStats: Stats{Hunger: 85, Thirst: 85, Happiness: 85, Hygiene: 90, Energy: 85},
		Actions: withActions(func(a map[ActionKind]ActionSpec) {
			play := a[ActionPlay]
			play.RequiresToy = false
			a[ActionPlay] = play
		}),
	},
}

// ProfileFor returns the care profile for an archetype. Unknown archetypes
// fall back to the dog profile rather than failing.
func ProfileFor(archetype Archetype) *CareProfile {
	if p, ok := profiles[archetype]; ok {
		return p
	}
	slog.Warn("unknown archetype, using dog profile", "archetype", archetype)
	return profiles[Dog]
}
