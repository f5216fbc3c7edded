package pet

import (
	"fmt"
	"log/slog"
	"time"
)

// CheckSleep evaluates the sleep window against the wall clock and applies an
// edge-triggered transition. It returns true when the state changed. Ticks
// that do not cross a window boundary are no-ops, so transition events are
// emitted exactly once per crossing.
func (p *Pet) CheckSleep(profile *CareProfile, now time.Time) bool {
	shouldSleep := profile.Sleep.Contains(now.Hour())
	if shouldSleep == p.IsAsleep() {
		return false
	}

	if shouldSleep {
		p.Asleep = now
		p.HungerAtDoze = p.Stats.Hunger
		p.ThirstAtDoze = p.Stats.Thirst
		p.AddEvent(fmt.Sprintf("%s fell asleep", p.Name), "", now)
		slog.Info("pet fell asleep", "name", p.Name, "hour", now.Hour())
	} else {
		p.Asleep = time.Time{}
		p.AddEvent(fmt.Sprintf("%s woke up", p.Name), "", now)
		slog.Info("pet woke up", "name", p.Name, "hour", now.Hour())
	}
	p.refreshMood()
	return true
}

// remainingSleep returns how long until the sleep window ends, measured from
// now. Zero when the window end is not ahead.
func remainingSleep(w SleepWindow, now time.Time) time.Duration {
	end := time.Date(now.Year(), now.Month(), now.Day(), w.EndHour, 0, 0, 0, now.Location())
	if !end.After(now) {
		end = end.Add(24 * time.Hour)
	}
	// Guard against an end more than a full window away (evaluated outside
	// the window); callers only use this while asleep.
	return end.Sub(now)
}

// daytimeByMinute is the decay clock's own day/night predicate, computed from
// minute-of-day against the sleep window. It deliberately does not consult
// the Asleep flag: the two derivations are allowed to disagree, and energy
// drain follows this one while mood follows the sleep cycle's.
func daytimeByMinute(w SleepWindow, now time.Time) bool {
	minute := now.Hour()*60 + now.Minute()
	start := w.StartHour * 60
	end := w.EndHour * 60
	if start > end {
		return minute < start && minute >= end
	}
	return minute < start || minute >= end
}
