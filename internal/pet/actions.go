package pet

import (
	"fmt"
	"log/slog"
	"time"
)

// Toy economics
const (
	ToyBreakChance       = 0.15
	ToyBreakPenalty      = 10.0 // happiness lost if the toy is not replaced
	ToyReplacementWindow = 60 * time.Second
)

// RejectReason explains why an attempt was refused. State is never modified
// on a rejection.
type RejectReason string

const (
	ReasonNone             RejectReason = ""
	ReasonActionInProgress RejectReason = "action_in_progress"
	ReasonSleeping         RejectReason = "sleeping"
	ReasonNotNeeded        RejectReason = "not_needed"
	ReasonTooTired         RejectReason = "too_tired"
	ReasonOnCooldown       RejectReason = "on_cooldown"
	ReasonNeedsToy         RejectReason = "needs_toy"
	ReasonAlreadyOwned     RejectReason = "already_owned"
	ReasonUnknownAction    RejectReason = "unknown_action"
)

// Result reports the outcome of an Attempt.
type Result struct {
	OK      bool
	Reason  RejectReason
	Cost    int           // amount charged when OK
	EndsAt  time.Time     // completion time when OK
	Elapsed time.Duration // effective duration when OK
}

// SubEvent is a mid-action happening, sampled once at action start and fired
// when its moment passes. Clearing the run cancels any unfired sub-events.
type SubEvent struct {
	At        time.Time
	Happiness float64
	Hygiene   float64
	Message   string
	Fired     bool
}

// ActionRun is the transient record of a care action in progress. At most
// one run exists per pet; its countdown expiry is the only completion path.
type ActionRun struct {
	Kind      ActionKind
	Start     time.Time
	Duration  time.Duration
	Deltas    Stats
	SubEvents []SubEvent
}

// EndsAt returns the completion deadline.
func (r *ActionRun) EndsAt() time.Time { return r.Start.Add(r.Duration) }

// Remaining returns the time left before completion, floored at zero.
func (r *ActionRun) Remaining(now time.Time) time.Duration {
	left := r.EndsAt().Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// subEventTable lists the candidate mid-action happenings per kind. Fractions
// position each slot within the action's duration; chances are sampled
// independently at start.
var subEventTable = map[ActionKind][]struct {
	Fraction  float64
	Chance    float64
	Happiness float64
	Hygiene   float64
	Message   string
}{
	ActionExercise: {
		{0.25, 0.30, 4, 0, "found a great stick on the walk!"},
		{0.50, 0.20, 0, -6, "rolled in something muddy..."},
		{0.75, 0.25, 3, 0, "made a friend at the park!"},
	},
	ActionPlay: {
		{0.25, 0.30, 3, 0, "got the zoomies mid-play!"},
		{0.50, 0.15, 0, -4, "knocked the water bowl over..."},
		{0.75, 0.20, 4, 0, "did a trick nobody taught them!"},
	},
}

// Attempt validates and starts a care action. Every precondition failure
// returns a reason and leaves the pet untouched; acceptance charges the cost
// and creates the ActionRun.
func (p *Pet) Attempt(profile *CareProfile, kind ActionKind, now time.Time) Result {
	spec, ok := profile.Actions[kind]
	if !ok {
		return Result{Reason: ReasonUnknownAction}
	}

	if p.Run != nil {
		return Result{Reason: ReasonActionInProgress}
	}
	if p.IsAsleep() {
		return Result{Reason: ReasonSleeping}
	}

	switch kind {
	case ActionFeed:
		if p.Stats.Hunger >= spec.TriggerThreshold {
			return Result{Reason: ReasonNotNeeded}
		}
	case ActionWater:
		if p.Stats.Thirst >= spec.TriggerThreshold {
			return Result{Reason: ReasonNotNeeded}
		}
	case ActionBath:
		if p.Stats.Hygiene >= spec.TriggerThreshold {
			return Result{Reason: ReasonNotNeeded}
		}
		if onCooldown(p.Ledger.LastBathTime, spec.Cooldown, now) {
			return Result{Reason: ReasonOnCooldown}
		}
	case ActionGroom:
		if p.Stats.Hygiene >= spec.TriggerThreshold {
			return Result{Reason: ReasonNotNeeded}
		}
		if onCooldown(p.Ledger.LastTrimNailsTime, spec.Cooldown, now) {
			return Result{Reason: ReasonOnCooldown}
		}
	case ActionExercise:
		if p.Stats.Energy < spec.MinEnergy {
			return Result{Reason: ReasonTooTired}
		}
		if onCooldown(p.Ledger.LastWalkTime, spec.Cooldown, now) {
			return Result{Reason: ReasonOnCooldown}
		}
	case ActionPlay:
		if p.Stats.Energy < spec.MinEnergy {
			return Result{Reason: ReasonTooTired}
		}
		if spec.RequiresToy && !p.Ledger.HasToy {
			return Result{Reason: ReasonNeedsToy}
		}
	case ActionBuyToy:
		if p.Ledger.HasToy {
			return Result{Reason: ReasonAlreadyOwned}
		}
	case ActionVetVisit:
		// No threshold gate; the vet sees everyone.
	}

	cost, duration := spec.Cost, spec.Duration
	if kind == ActionFeed && p.Archetype == Dog {
		cost, duration = applyFeedOverride(cost, duration, p.Ledger.FeedCount)
	}

	p.TotalSpent += cost
	p.Run = &ActionRun{
		Kind:      kind,
		Start:     now,
		Duration:  duration,
		Deltas:    spec.Deltas,
		SubEvents: sampleSubEvents(kind, now, duration),
	}

	slog.Info("action started",
		"kind", kind, "cost", cost, "duration", duration,
		"sub_events", len(p.Run.SubEvents))
	return Result{OK: true, Cost: cost, EndsAt: p.Run.EndsAt(), Elapsed: duration}
}

// applyFeedOverride implements the dog's kibble economics: free while the
// starter bag lasts, then a surcharge plus a restock delay on every feed.
func applyFeedOverride(cost int, duration time.Duration, feedCount int) (int, time.Duration) {
	if feedCount < FreeFeedCount {
		return 0, duration
	}
	return cost + FeedSurcharge, duration + FeedRestockExtension
}

func onCooldown(last time.Time, cooldown time.Duration, now time.Time) bool {
	if last.IsZero() || cooldown <= 0 {
		return false
	}
	return now.Sub(last) < cooldown
}

func sampleSubEvents(kind ActionKind, start time.Time, duration time.Duration) []SubEvent {
	candidates, ok := subEventTable[kind]
	if !ok {
		return nil
	}
	var events []SubEvent
	for _, c := range candidates {
		if RandFloat64() < c.Chance {
			events = append(events, SubEvent{
				At:        start.Add(time.Duration(c.Fraction * float64(duration))),
				Happiness: c.Happiness,
				Hygiene:   c.Hygiene,
				Message:   c.Message,
			})
		}
	}
	return events
}

// AdvanceRun fires any due sub-events and completes the action once its
// countdown has expired. It returns true when the action completed on this
// call. With no run in progress it does nothing.
func (p *Pet) AdvanceRun(profile *CareProfile, now time.Time) bool {
	run := p.Run
	if run == nil {
		return false
	}

	for i := range run.SubEvents {
		se := &run.SubEvents[i]
		if se.Fired || now.Before(se.At) {
			continue
		}
		se.Fired = true
		p.Stats.Happiness += se.Happiness
		p.Stats.Hygiene += se.Hygiene
		p.Stats.Clamp()
		p.AddEvent(fmt.Sprintf("%s %s", p.Name, se.Message), run.Kind, now)
		p.RecordSnapshot(now)
	}

	if now.Before(run.EndsAt()) {
		return false
	}

	p.completeRun(profile, run, now)
	return true
}

func (p *Pet) completeRun(profile *CareProfile, run *ActionRun, now time.Time) {
	p.Stats.Hunger += run.Deltas.Hunger
	p.Stats.Thirst += run.Deltas.Thirst
	p.Stats.Happiness += run.Deltas.Happiness
	p.Stats.Hygiene += run.Deltas.Hygiene
	p.Stats.Energy += run.Deltas.Energy
	p.Stats.Clamp()

	message := completionMessage(run.Kind, p.Name)

	switch run.Kind {
	case ActionFeed:
		p.Ledger.FeedCount++
	case ActionExercise:
		p.Ledger.LastWalkTime = now
	case ActionBath:
		p.Ledger.LastBathTime = now
	case ActionGroom:
		p.Ledger.LastTrimNailsTime = now
	case ActionBuyToy:
		p.Ledger.HasToy = true
		// A fresh toy calls off any pending break penalty.
		p.ToyPenaltyDue = time.Time{}
	case ActionPlay:
		spec := profile.Actions[ActionPlay]
		if spec.RequiresToy && p.Ledger.HasToy && RandFloat64() < ToyBreakChance {
			p.Ledger.HasToy = false
			p.ToyPenaltyDue = now.Add(ToyReplacementWindow)
			p.AddEvent(fmt.Sprintf("%s's toy broke!", p.Name), ActionPlay, now)
			slog.Info("toy broke during play", "name", p.Name)
		}
	}

	p.Run = nil
	p.AddEvent(message, run.Kind, now)
	p.refreshMood()
	p.RecordSnapshot(now)
	slog.Info("action completed", "kind", run.Kind, "stats", p.Stats)
}

// CheckToyPenalty applies the delayed sadness of a broken, unreplaced toy.
// The penalty lands at most once; buying a replacement before the window
// elapses suppresses it entirely.
func (p *Pet) CheckToyPenalty(now time.Time) bool {
	if p.ToyPenaltyDue.IsZero() || now.Before(p.ToyPenaltyDue) {
		return false
	}
	p.ToyPenaltyDue = time.Time{}
	if p.Ledger.HasToy {
		return false
	}
	p.Stats.Happiness -= ToyBreakPenalty
	p.Stats.Clamp()
	p.refreshMood()
	p.AddEvent(fmt.Sprintf("%s misses their broken toy...", p.Name), "", now)
	p.RecordSnapshot(now)
	return true
}

func completionMessage(kind ActionKind, name string) string {
	switch kind {
	case ActionFeed:
		return fmt.Sprintf("Fed %s a hearty meal", name)
	case ActionWater:
		return fmt.Sprintf("Refilled %s's water bowl", name)
	case ActionExercise:
		return fmt.Sprintf("Took %s for a walk", name)
	case ActionPlay:
		return fmt.Sprintf("Played with %s", name)
	case ActionBath:
		return fmt.Sprintf("Gave %s a bath", name)
	case ActionGroom:
		return fmt.Sprintf("Groomed %s and trimmed their nails", name)
	case ActionVetVisit:
		return fmt.Sprintf("Took %s to the vet for a checkup", name)
	case ActionBuyToy:
		return fmt.Sprintf("Bought %s a brand new toy", name)
	default:
		return fmt.Sprintf("Cared for %s", name)
	}
}
