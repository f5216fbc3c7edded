package pet

import (
	"math"
	"time"
)

// Decay tick constants
const (
	DecayTickInterval = 30 * time.Second

	// Awake-branch amplifiers: low hunger and poor hygiene each compound
	// happiness loss.
	lowHungerAmplifier     = 1.5
	lowHungerThreshold     = 25.0
	lowHygieneAmplifier    = 1.5
	lowHygieneThreshold    = 40.0
	idleEnergyRegenPerTick = 2.0

	// Asleep-branch constants
	sleepHungerFloor     = 20.0
	sleepThirstFloor     = 15.0
	sleepHappinessFactor = 0.3
	sleepHygieneFactor   = 0.25
	sleepEnergyRegen     = 0.8
)

// ApplyDecayTick advances ambient decay by one clock period. It is a no-op
// while a care action is in progress: ambient decay and action effects never
// land on the same tick.
func (p *Pet) ApplyDecayTick(profile *CareProfile, now time.Time) {
	if p.Run != nil {
		return
	}

	if p.IsAsleep() {
		p.applyAsleepDecay(profile, now)
	} else {
		p.applyAwakeDecay(profile, now)
	}

	p.Stats.Clamp()
	p.refreshMood()
	p.RecordSnapshot(now)
	p.LastAmbientTick = now
}

func (p *Pet) applyAwakeDecay(profile *CareProfile, now time.Time) {
	rates := profile.Rates

	p.Stats.Hunger -= 0.5 / rates.HungerMins

	happinessLoss := 0.5 / rates.HappinessMins
	if p.Stats.Hunger < lowHungerThreshold {
		happinessLoss *= lowHungerAmplifier
	}
	if p.Stats.Hygiene < lowHygieneThreshold {
		happinessLoss *= lowHygieneAmplifier
	}
	p.Stats.Happiness -= happinessLoss

	p.Stats.Hygiene -= 0.5 / (2 * rates.HygieneHours)
	p.Stats.Thirst -= 0.5 / rates.ThirstMins

	if daytimeByMinute(profile.Sleep, now) {
		p.Stats.Energy -= 0.5 / rates.EnergyMins
	} else {
		// Idle nighttime regen, scaled by real minutes since the previous
		// ambient tick so delayed ticks still credit the full rest.
		sinceMins := 0.5
		if !p.LastAmbientTick.IsZero() {
			sinceMins = now.Sub(p.LastAmbientTick).Minutes()
		}
		gain := math.Min(idleEnergyRegenPerTick, idleEnergyRegenPerTick*sinceMins/DecayTickInterval.Minutes())
		p.Stats.Energy += gain
	}
}

func (p *Pet) applyAsleepDecay(profile *CareProfile, now time.Time) {
	rates := profile.Rates
	remaining := remainingSleep(profile.Sleep, now).Minutes()
	if remaining < 1 {
		remaining = 1
	}
	tickFrac := DecayTickInterval.Minutes() / remaining

	// Hunger eases toward its floor over the rest of the night, at half the
	// straight-line pace.
	if p.Stats.Hunger > sleepHungerFloor {
		p.Stats.Hunger -= (p.Stats.Hunger - sleepHungerFloor) * tickFrac * 0.5
	}

	p.Stats.Happiness -= (0.5 / rates.HappinessMins) * sleepHappinessFactor
	p.Stats.Hygiene -= (0.5 / (2 * rates.HygieneHours)) * sleepHygieneFactor
	p.Stats.Energy += sleepEnergyRegen

	if p.Stats.Thirst > sleepThirstFloor {
		p.Stats.Thirst -= (p.Stats.Thirst - sleepThirstFloor) * tickFrac
	}
}
