package pet

import (
	"testing"
	"time"
)

func TestMaybeIdleEvent(t *testing.T) {
	t.Run("fires under the chance roll", func(t *testing.T) {
		p := newTestPet(t)
		mockRandFloat64(t, 0.1)

		if !p.MaybeIdleEvent(testBase) {
			t.Fatal("idle event did not fire")
		}
		if p.Events[0].Message != "Rex chased their tail" {
			t.Errorf("Events[0] = %q", p.Events[0].Message)
		}
	})

	t.Run("silent above the chance roll", func(t *testing.T) {
		p := newTestPet(t)
		mockRandFloat64(t, 0.9)

		if p.MaybeIdleEvent(testBase) {
			t.Error("idle event fired against the odds")
		}
	})

	t.Run("sleeping pets stay quiet", func(t *testing.T) {
		p := newTestPet(t)
		mockRandFloat64(t, 0.0)
		p.Asleep = testBase

		if p.MaybeIdleEvent(testBase) {
			t.Error("idle event fired while asleep")
		}
	})

	t.Run("mid-action pets stay quiet", func(t *testing.T) {
		p := newTestPet(t)
		mockRandFloat64(t, 0.0)
		p.Run = &ActionRun{Kind: ActionFeed, Start: testBase, Duration: 10 * time.Second}

		if p.MaybeIdleEvent(testBase) {
			t.Error("idle event fired during an action")
		}
	})
}
