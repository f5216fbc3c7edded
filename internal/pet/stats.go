package pet

import (
	"math/rand"
	"time"
)

// Testable time and random functions
var (
	TimeNow     = func() time.Time { return time.Now() }
	RandFloat64 = rand.Float64
)

// Stat bounds
const (
	MaxStat = 100.0
	MinStat = 0.0
)

// Stats is the five-dimensional condition vector. Every producer of a new
// Stats value clamps each field to [0,100].
type Stats struct {
	Hunger    float64 `json:"hunger"`
	Thirst    float64 `json:"thirst"`
	Happiness float64 `json:"happiness"`
	Hygiene   float64 `json:"hygiene"`
	Energy    float64 `json:"energy"`
}

// Clamp bounds every field to [0,100].
func (s *Stats) Clamp() {
	s.Hunger = clampStat(s.Hunger)
	s.Thirst = clampStat(s.Thirst)
	s.Happiness = clampStat(s.Happiness)
	s.Hygiene = clampStat(s.Hygiene)
	s.Energy = clampStat(s.Energy)
}

// Average returns the mean of the five stats.
func (s Stats) Average() float64 {
	return (s.Hunger + s.Thirst + s.Happiness + s.Hygiene + s.Energy) / 5
}

func clampStat(v float64) float64 {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// Mood is derived from happiness and the sleep flag; it is never an
// independent input to anything.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodOkay     Mood = "okay"
	MoodSad      Mood = "sad"
	MoodGrumpy   Mood = "grumpy"
	MoodNeutral  Mood = "neutral"
	MoodSleeping Mood = "sleeping"
)

// Mood thresholds on happiness
const (
	HappyMoodThreshold = 80
	OkayMoodThreshold  = 50
	SadMoodThreshold   = 20
)

// DeriveMood maps (happiness, asleep) to a mood.
func DeriveMood(happiness float64, asleep bool) Mood {
	if asleep {
		return MoodSleeping
	}
	switch {
	case happiness >= HappyMoodThreshold:
		return MoodHappy
	case happiness >= OkayMoodThreshold:
		return MoodOkay
	case happiness >= SadMoodThreshold:
		return MoodSad
	default:
		return MoodGrumpy
	}
}
