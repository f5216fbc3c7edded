package pet

import (
	"log/slog"
	"time"
)

// Nighttime catch-up dampening: hunger and happiness decay at 20% of normal
// when the app is reopened between 22:00 and 06:00. The check uses the
// current hour only, not the span of the gap; that approximation is part of
// the contract.
const (
	nightDampeningFactor = 0.2
	nightBandStartHour   = 22
	nightBandEndHour     = 6
)

// CatchUp reconciles stats after an arbitrary real-time gap, applying the
// awake-branch decay formulas as one bulk update over the elapsed minutes.
// Thirst, hygiene, and energy always decay at full rate; no energy
// regeneration is modeled even if the gap spanned sleep hours.
func (p *Pet) CatchUp(profile *CareProfile, elapsed time.Duration, now time.Time) {
	mins := elapsed.Minutes()
	if mins <= 0 {
		return
	}
	rates := profile.Rates

	softRate := 1.0
	hour := now.Hour()
	if hour >= nightBandStartHour || hour < nightBandEndHour {
		softRate = nightDampeningFactor
	}

	p.Stats.Hunger -= mins / rates.HungerMins * softRate

	happinessLoss := mins / rates.HappinessMins * softRate
	if p.Stats.Hunger < lowHungerThreshold {
		happinessLoss *= lowHungerAmplifier
	}
	if p.Stats.Hygiene < lowHygieneThreshold {
		happinessLoss *= lowHygieneAmplifier
	}
	p.Stats.Happiness -= happinessLoss

	p.Stats.Thirst -= mins / rates.ThirstMins
	p.Stats.Hygiene -= mins / (2 * rates.HygieneHours)
	p.Stats.Energy -= mins / rates.EnergyMins

	p.Stats.Clamp()
	p.refreshMood()
	p.RecordSnapshot(now)
	p.LastAmbientTick = now

	slog.Info("offline catch-up applied",
		"elapsed_mins", int(mins), "night_dampened", softRate != 1.0, "stats", p.Stats)
}
