package game

import (
	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/pet"
	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/store"
)

// dehydrate flattens the live pet into the persisted record shape.
func dehydrate(p *pet.Pet) *store.Record {
	rec := &store.Record{
		Pet: store.PetRecord{
			Type:  string(p.Archetype),
			Name:  p.Name,
			Stats: p.Stats,
			Mood:  string(p.Mood),
		},
		TotalSpent:        p.TotalSpent,
		HasToy:            p.Ledger.HasToy,
		InitialPurchases:  p.Ledger.InitialPurchases,
		LastWalkTime:      store.EpochMillis(p.Ledger.LastWalkTime),
		LastBathTime:      store.EpochMillis(p.Ledger.LastBathTime),
		LastTrimNailsTime: store.EpochMillis(p.Ledger.LastTrimNailsTime),
		FeedCount:         p.Ledger.FeedCount,
		LastSaved:         pet.TimeNow(),
	}

	for _, e := range p.Events {
		rec.Events = append(rec.Events, store.EventRecord{
			Message: e.Message,
			Kind:    string(e.Kind),
			Time:    store.EpochMillis(e.Time),
		})
	}
	for _, snap := range p.History {
		rec.StatHistory = append(rec.StatHistory, store.HistoryRecord{
			Time:  store.EpochMillis(snap.Time),
			Stats: snap.Stats,
		})
	}
	return rec
}

// hydrate rebuilds a live pet from a persisted record. The record has
// already passed the identity check; stats are clamped defensively in case
// the blob was hand-edited.
func hydrate(rec *store.Record, archetype pet.Archetype) *pet.Pet {
	p := &pet.Pet{
		Archetype:  archetype,
		Name:       rec.Pet.Name,
		Stats:      rec.Pet.Stats,
		Mood:       pet.Mood(rec.Pet.Mood),
		TotalSpent: rec.TotalSpent,
		Ledger: pet.CooldownLedger{
			LastWalkTime:      store.FromEpochMillis(rec.LastWalkTime),
			LastBathTime:      store.FromEpochMillis(rec.LastBathTime),
			LastTrimNailsTime: store.FromEpochMillis(rec.LastTrimNailsTime),
			FeedCount:         rec.FeedCount,
			HasToy:            rec.HasToy,
			InitialPurchases:  rec.InitialPurchases,
		},
	}
	if p.Ledger.InitialPurchases == nil {
		p.Ledger.InitialPurchases = map[string]bool{}
	}
	p.Stats.Clamp()

	for _, e := range rec.Events {
		p.Events = append(p.Events, pet.Entry{
			Message: e.Message,
			Kind:    pet.ActionKind(e.Kind),
			Time:    store.FromEpochMillis(e.Time),
		})
	}
	if len(p.Events) > pet.MaxEventEntries {
		p.Events = p.Events[:pet.MaxEventEntries]
	}
	for _, snap := range rec.StatHistory {
		p.History = append(p.History, pet.Snapshot{
			Time:  store.FromEpochMillis(snap.Time),
			Stats: snap.Stats,
		})
	}
	if len(p.History) > pet.MaxStatSnapshots {
		p.History = p.History[len(p.History)-pet.MaxStatSnapshots:]
	}
	return p
}
