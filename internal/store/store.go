// Package store persists the whole game as one opaque record under a fixed
// key. Every backend overwrites the full record on save; last writer wins.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/pet"
)

// SaveKey is the fixed identifier the record lives under in every backend.
const SaveKey = "vpet:save"

// ErrNotFound means no usable record exists: never saved, deleted, or
// unparseable. Callers treat all three the same way — fresh start.
var ErrNotFound = errors.New("store: record not found")

// PetRecord is the persisted pet identity and condition.
type PetRecord struct {
	Type  string    `json:"type"`
	Name  string    `json:"name"`
	Stats pet.Stats `json:"stats"`
	Mood  string    `json:"mood"`
}

// EventRecord is one persisted event-log line, newest first in the record.
type EventRecord struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
	Time    int64  `json:"time"` // epoch ms
}

// HistoryRecord is one persisted stat snapshot, oldest first in the record.
type HistoryRecord struct {
	Time  int64     `json:"time"` // epoch ms
	Stats pet.Stats `json:"stats"`
}

// Record is the full persisted blob. Timestamps are epoch milliseconds with
// 0 meaning never.
type Record struct {
	Pet               PetRecord       `json:"pet"`
	TotalSpent        int             `json:"totalSpent"`
	Events            []EventRecord   `json:"events,omitempty"`
	HasToy            bool            `json:"hasToy"`
	InitialPurchases  map[string]bool `json:"initialPurchases,omitempty"`
	LastWalkTime      int64           `json:"lastWalkTime"`
	LastBathTime      int64           `json:"lastBathTime"`
	LastTrimNailsTime int64           `json:"lastTrimNailsTime"`
	FeedCount         int             `json:"feedCount"`
	StatHistory       []HistoryRecord `json:"statHistory,omitempty"`
	LastSaved         time.Time       `json:"lastSaved"`
}

// Store is the persistence collaborator. Implementations must treat corrupt
// data as absent (ErrNotFound), never as a fatal condition.
type Store interface {
	Load(ctx context.Context) (*Record, error)
	Save(ctx context.Context, rec *Record) error
	Clear(ctx context.Context) error
	Close() error
}

// EpochMillis converts a time to epoch milliseconds, with the zero time
// mapping to 0 ("never").
func EpochMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// FromEpochMillis is the inverse of EpochMillis.
func FromEpochMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
