package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "vpet.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	saved := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	want := sampleRecord(saved)
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertRecordsMatch(t, got, want)
}

func TestSQLiteStoreMissingRow(t *testing.T) {
	s := newTestSQLiteStore(t)

	_, err := s.Load(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load missing = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStoreCorruptPayload(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO saves (key, payload, saved_at) VALUES (?, ?, ?)",
		SaveKey, "{not json", 0)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load corrupt = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStoreSaveOverwrites(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	first := sampleRecord(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	second := sampleRecord(time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC))
	second.FeedCount = 121

	if err := s.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.FeedCount != 121 {
		t.Errorf("FeedCount = %d, want the later write", got.FeedCount)
	}

	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM saves"); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want the single fixed key", count)
	}
}

func TestSQLiteStoreClear(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, sampleRecord(time.Now())); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := s.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after Clear = %v, want ErrNotFound", err)
	}
}
