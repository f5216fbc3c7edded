package pet

import (
	"testing"
	"time"
)

func TestTimeUntilNeededThresholdActions(t *testing.T) {
	p := newTestPet(t)
	profile := ProfileFor(Dog)

	// 20 points above the feed threshold at 12 min/% is a 4h wait.
	p.Stats.Hunger = 90
	if got := TimeUntilNeeded(profile, p, ActionFeed, testBase); got != 4*time.Hour {
		t.Errorf("feed countdown = %v, want 4h", got)
	}

	// At or below the threshold the action is available now.
	p.Stats.Hunger = 70
	if got := TimeUntilNeeded(profile, p, ActionFeed, testBase); got != 0 {
		t.Errorf("feed countdown at threshold = %v, want 0", got)
	}
	p.Stats.Hunger = 30
	if got := TimeUntilNeeded(profile, p, ActionFeed, testBase); got != 0 {
		t.Errorf("feed countdown below threshold = %v, want 0", got)
	}

	p.Stats.Thirst = 85
	if got := TimeUntilNeeded(profile, p, ActionWater, testBase); got != 100*time.Minute {
		t.Errorf("water countdown = %v, want 100m", got)
	}
}

func TestTimeUntilNeededCooldownActions(t *testing.T) {
	p := newTestPet(t)
	profile := ProfileFor(Dog)

	// Never done: available immediately.
	if got := TimeUntilNeeded(profile, p, ActionExercise, testBase); got != 0 {
		t.Errorf("exercise countdown with no history = %v, want 0", got)
	}

	p.Ledger.LastWalkTime = testBase.Add(-time.Hour)
	if got := TimeUntilNeeded(profile, p, ActionExercise, testBase); got != 3*time.Hour {
		t.Errorf("exercise countdown = %v, want 3h", got)
	}

	p.Ledger.LastBathTime = testBase.Add(-30 * time.Hour)
	if got := TimeUntilNeeded(profile, p, ActionBath, testBase); got != 0 {
		t.Errorf("bath countdown past cooldown = %v, want 0", got)
	}

	p.Ledger.LastTrimNailsTime = testBase.Add(-24 * time.Hour)
	if got := TimeUntilNeeded(profile, p, ActionGroom, testBase); got != 48*time.Hour {
		t.Errorf("groom countdown = %v, want 48h", got)
	}
}

func TestTimeUntilNeededUngatedActions(t *testing.T) {
	p := newTestPet(t)
	profile := ProfileFor(Dog)

	for _, kind := range []ActionKind{ActionPlay, ActionVetVisit, ActionBuyToy} {
		if got := TimeUntilNeeded(profile, p, kind, testBase); got != 0 {
			t.Errorf("%v countdown = %v, want 0", kind, got)
		}
	}
}
