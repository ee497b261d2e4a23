package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"blademedia/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "state", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return store
}

func TestRecordAndListRuns(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	first := history.RunRecord{
		ID:              uuid.NewString(),
		StartedAt:       base,
		FinishedAt:      base.Add(30 * time.Second),
		Mode:            "full",
		MoviesOrganized: 2,
		MoviesSkipped:   1,
		Errors:          []string{"move failed: movie.mkv"},
	}
	second := history.RunRecord{
		ID:          uuid.NewString(),
		StartedAt:   base.Add(time.Hour),
		FinishedAt:  base.Add(time.Hour + 5*time.Second),
		Mode:        "tv",
		DryRun:      true,
		TVOrganized: 4,
	}
	for _, rec := range []history.RunRecord{first, second} {
		if err := store.RecordRun(ctx, rec); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second.ID {
		t.Fatalf("expected newest first, got %s", runs[0].ID)
	}
	if !runs[0].DryRun || runs[0].Mode != "tv" || runs[0].TVOrganized != 4 {
		t.Fatalf("second run mismatch: %+v", runs[0])
	}
	if got := runs[1]; got.MoviesOrganized != 2 || len(got.Errors) != 1 || got.Errors[0] != first.Errors[0] {
		t.Fatalf("first run mismatch: %+v", got)
	}
	if !runs[1].StartedAt.Equal(base) {
		t.Fatalf("started_at = %v, want %v", runs[1].StartedAt, base)
	}
}

func TestRecentRunsHonorsLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		rec := history.RunRecord{
			ID:         uuid.NewString(),
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FinishedAt: base.Add(time.Duration(i)*time.Minute + time.Second),
			Mode:       "full",
		}
		if err := store.RecordRun(ctx, rec); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	runs, err := store.RecentRuns(ctx, 3)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
}
