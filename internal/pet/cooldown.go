package pet

import "time"

// TimeUntilNeeded projects how long until an action becomes available,
// assuming no further care. Threshold actions count down the stat's drift to
// its trigger level at the profile's ambient rate; cooldown actions count
// down the remaining cooldown. Zero means available now.
func TimeUntilNeeded(profile *CareProfile, p *Pet, kind ActionKind, now time.Time) time.Duration {
	spec, ok := profile.Actions[kind]
	if !ok {
		return 0
	}

	switch kind {
	case ActionFeed:
		return thresholdCountdown(p.Stats.Hunger, spec.TriggerThreshold, profile.Rates.HungerMins)
	case ActionWater:
		return thresholdCountdown(p.Stats.Thirst, spec.TriggerThreshold, profile.Rates.ThirstMins)
	case ActionExercise:
		return cooldownCountdown(p.Ledger.LastWalkTime, spec.Cooldown, now)
	case ActionBath:
		return cooldownCountdown(p.Ledger.LastBathTime, spec.Cooldown, now)
	case ActionGroom:
		return cooldownCountdown(p.Ledger.LastTrimNailsTime, spec.Cooldown, now)
	default:
		return 0
	}
}

// thresholdCountdown converts a stat surplus above its trigger level into
// minutes at the ambient decay rate.
func thresholdCountdown(current, threshold, minsPerPercent float64) time.Duration {
	if current <= threshold {
		return 0
	}
	mins := (current - threshold) * minsPerPercent
	return time.Duration(mins * float64(time.Minute))
}

func cooldownCountdown(last time.Time, cooldown time.Duration, now time.Time) time.Duration {
	if last.IsZero() || cooldown <= 0 {
		return 0
	}
	left := cooldown - now.Sub(last)
	if left < 0 {
		return 0
	}
	return left
}
