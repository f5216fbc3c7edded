package pet

import (
	"fmt"
	"time"
)

// Idle flavor events: harmless color appended to the event log when the pet
// is awake with nothing going on. No stat effects.
const (
	IdleEventInterval = 120 * time.Second
	idleEventChance   = 0.25
)

var flavorMessages = map[Archetype][]string{
	Dog:    {"chased their tail", "barked at the mail carrier", "napped in a sunbeam"},
	Cat:    {"knocked a pen off the table", "stared at the wall intently", "loafed on the windowsill"},
	Parrot: {"whistled a little tune", "repeated something embarrassing", "preened their feathers"},
	Rabbit: {"did a happy binky", "thumped at nothing in particular", "nibbled the newspaper"},
}

// MaybeIdleEvent rolls for a flavor event. It returns true when one fired.
// Sleeping pets and pets mid-action stay quiet.
func (p *Pet) MaybeIdleEvent(now time.Time) bool {
	if p.IsAsleep() || p.Run != nil {
		return false
	}
	if RandFloat64() >= idleEventChance {
		return false
	}
	msgs := flavorMessages[p.Archetype]
	if len(msgs) == 0 {
		msgs = flavorMessages[Dog]
	}
	msg := msgs[int(RandFloat64()*float64(len(msgs)))%len(msgs)]
	p.AddEvent(fmt.Sprintf("%s %s", p.Name, msg), "", now)
	return true
}
