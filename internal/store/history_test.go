package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/budgie/internal/model"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := OpenHistory(filepath.Join(t.TempDir(), "history", "history.db"))
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestHistoryRecordAndRecent(t *testing.T) {
	h := openTestHistory(t)
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		s := model.NewBudgetState(100)
		s.AddExpense("item", float64(10*(i+1)))
		snap := model.NewSnapshot("session-1", "budget_data.json", base.Add(time.Duration(i)*time.Hour), &s)
		if err := h.Record(snap); err != nil {
			t.Fatalf("Record #%d: %v", i, err)
		}
	}

	count, err := h.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 3 {
		t.Fatalf("Count = %d, want 3", count)
	}

	recent, err := h.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent(2) returned %d rows", len(recent))
	}
	if recent[0].Spent != 30 || recent[1].Spent != 20 {
		t.Fatalf("Recent order = [%.0f, %.0f], want [30, 20]", recent[0].Spent, recent[1].Spent)
	}
	if !recent[0].SavedAt.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("SavedAt = %v, want %v", recent[0].SavedAt, base.Add(2*time.Hour))
	}
	if recent[0].Balance != 70 || recent[0].Count != 1 || recent[0].SessionID != "session-1" {
		t.Fatalf("unexpected snapshot: %+v", recent[0])
	}
}

func TestHistoryRecentAll(t *testing.T) {
	h := openTestHistory(t)

	s := model.NewBudgetState(1)
	for i := 0; i < 4; i++ {
		if err := h.Record(model.NewSnapshot("s", "f.json", time.Time{}, &s)); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	all, err := h.Recent(0)
	if err != nil {
		t.Fatalf("Recent(0): %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("Recent(0) returned %d rows, want 4", len(all))
	}
	for _, snap := range all {
		if snap.SavedAt.IsZero() {
			t.Fatal("zero SavedAt should be stamped at record time")
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := openTestHistory(t)

	recent, err := h.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 0 {
		t.Fatalf("Recent on empty journal returned %d rows", len(recent))
	}
}
