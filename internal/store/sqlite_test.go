package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rcliao/quotebot/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	d, err := s.Record(ctx, model.Delivery{
		RunID: "run1", Mode: model.ModeNormal, Kind: "quote", Message: ">>> hi", OK: true,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if d.ID == "" {
		t.Error("expected non-empty ID")
	}
	if d.SentAt.IsZero() {
		t.Error("expected SentAt to be set")
	}

	got, err := s.Recent(ctx, RecentParams{})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Message != ">>> hi" || !got[0].OK || got[0].Mode != model.ModeNormal {
		t.Errorf("unexpected record: %+v", got[0])
	}
	if got[0].Reason != "" || got[0].Error != "" {
		t.Errorf("expected empty reason/error, got %q/%q", got[0].Reason, got[0].Error)
	}
}

func TestRecentNewestFirstAndFilters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.Record(ctx, model.Delivery{RunID: "a", Mode: model.ModeFlood, Kind: "flood", Message: "1", OK: true, SentAt: base})
	s.Record(ctx, model.Delivery{RunID: "a", Mode: model.ModeFlood, Kind: "flood", Message: "2", OK: false,
		Reason: "clipboard_unavailable", Error: "xclip missing", SentAt: base.Add(100 * time.Millisecond)})
	s.Record(ctx, model.Delivery{RunID: "b", Mode: model.ModeBurst, Kind: "burst", Message: "3", OK: true,
		SentAt: base.Add(1200 * time.Millisecond)})

	all, _ := s.Recent(ctx, RecentParams{})
	if len(all) != 3 {
		t.Fatalf("expected 3, got %d", len(all))
	}
	if all[0].Message != "3" || all[2].Message != "1" {
		t.Errorf("expected newest first, got %q..%q", all[0].Message, all[2].Message)
	}

	runA, _ := s.Recent(ctx, RecentParams{RunID: "a"})
	if len(runA) != 2 {
		t.Errorf("expected 2 for run a, got %d", len(runA))
	}

	failed, _ := s.Recent(ctx, RecentParams{Failed: true})
	if len(failed) != 1 || failed[0].Reason != "clipboard_unavailable" || failed[0].Error != "xclip missing" {
		t.Errorf("unexpected failed list: %+v", failed)
	}

	burst, _ := s.Recent(ctx, RecentParams{Mode: model.ModeBurst})
	if len(burst) != 1 {
		t.Errorf("expected 1 burst delivery, got %d", len(burst))
	}

	limited, _ := s.Recent(ctx, RecentParams{Limit: 2})
	if len(limited) != 2 {
		t.Errorf("expected limit 2, got %d", len(limited))
	}
}

func TestExportRunInSendOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	// 5.1s sorts before 5.12s only with a fixed-width layout.
	s.Record(ctx, model.Delivery{RunID: "r", Mode: model.ModeNormal, Kind: "quote", Message: "first", OK: true, SentAt: base.Add(100 * time.Millisecond)})
	s.Record(ctx, model.Delivery{RunID: "r", Mode: model.ModeNormal, Kind: "quote", Message: "second", OK: true, SentAt: base.Add(120 * time.Millisecond)})
	s.Record(ctx, model.Delivery{RunID: "other", Mode: model.ModeNormal, Kind: "quote", Message: "x", OK: true, SentAt: base})

	got, err := s.ExportRun(ctx, "r")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(got) != 2 || got[0].Message != "first" || got[1].Message != "second" {
		t.Errorf("unexpected export: %+v", got)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Record(ctx, model.Delivery{RunID: "01A", Mode: model.ModeNormal, Kind: "quote", Message: "a", OK: true})
	s.Record(ctx, model.Delivery{RunID: "01A", Mode: model.ModeNormal, Kind: "quote", Message: "b", OK: false, Reason: "no_focused_target"})
	s.Record(ctx, model.Delivery{RunID: "01B", Mode: model.ModeFlood, Kind: "flood", Message: "c", OK: true})
	s.Record(ctx, model.Delivery{RunID: "01B", Mode: model.ModeFlood, Kind: "flood", Message: "d", OK: false, Reason: "no_focused_target"})

	st, err := s.Stats(ctx, "")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Total != 4 || st.Succeeded != 2 || st.Failed != 2 {
		t.Errorf("unexpected totals: %+v", st)
	}
	if st.Runs != 2 || st.LastRunID != "01B" {
		t.Errorf("expected 2 runs, last 01B, got %d %q", st.Runs, st.LastRunID)
	}
	if len(st.Modes) != 2 || st.Modes[0].Mode != "flood" || st.Modes[0].Succeeded != 1 {
		t.Errorf("unexpected modes: %+v", st.Modes)
	}
	if len(st.Reasons) != 1 || st.Reasons[0].Reason != "no_focused_target" || st.Reasons[0].Count != 2 {
		t.Errorf("unexpected reasons: %+v", st.Reasons)
	}
}

func TestStatsEmpty(t *testing.T) {
	s := newTestStore(t)
	st, err := s.Stats(context.Background(), "")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Total != 0 || st.LastRunID != "" || len(st.Modes) != 0 {
		t.Errorf("expected empty stats, got %+v", st)
	}
}

func TestNewIDsAreUnique(t *testing.T) {
	s := newTestStore(t)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := s.NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestDBPathCreation(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "dir", "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("expected db file to be created")
	}
}
