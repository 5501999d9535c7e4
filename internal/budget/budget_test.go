package budget

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"outlay/internal/store"
)

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "outlay.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return New(s)
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestCheckUnconfigured(t *testing.T) {
	ev := newTestEvaluator(t)

	if _, err := ev.Store.AddExpense("food", 10000, date(t, "2024-01-05"), ""); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	status, err := ev.Check(date(t, "2024-01-15"))
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if status.Configured {
		t.Error("Configured = true with no budget set")
	}
	if status.Exceeded || status.OverBy != 0 {
		t.Errorf("unconfigured check = exceeded %v, overBy %d; want false, 0", status.Exceeded, status.OverBy)
	}
	if status.Spent != 10000 {
		t.Errorf("Spent = %d, want 10000", status.Spent)
	}
}

func TestCheckAgainstLimit(t *testing.T) {
	tests := []struct {
		name     string
		spent    int64
		limit    int64
		exceeded bool
		overBy   int64
	}{
		{"under", 48000, 50000, false, 0},
		{"exactly at limit", 50000, 50000, false, 0},
		{"over", 52000, 50000, true, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := newTestEvaluator(t)

			if _, err := ev.Store.AddExpense("food", tt.spent, date(t, "2024-01-05"), ""); err != nil {
				t.Fatalf("AddExpense: %v", err)
			}
			if err := ev.Set(tt.limit); err != nil {
				t.Fatalf("Set: %v", err)
			}

			status, err := ev.Check(date(t, "2024-01-15"))
			if err != nil {
				t.Fatalf("Check: %v", err)
			}
			if status.Exceeded != tt.exceeded {
				t.Errorf("Exceeded = %v, want %v", status.Exceeded, tt.exceeded)
			}
			if status.OverBy != tt.overBy {
				t.Errorf("OverBy = %d, want %d", status.OverBy, tt.overBy)
			}
			if status.Spent != tt.spent || status.Limit != tt.limit {
				t.Errorf("Spent/Limit = %d/%d, want %d/%d", status.Spent, status.Limit, tt.spent, tt.limit)
			}
		})
	}
}

func TestCheckScenario(t *testing.T) {
	ev := newTestEvaluator(t)

	if _, err := ev.Store.AddExpense("food", 5000, date(t, "2024-01-05"), "lunch"); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if _, err := ev.Store.AddExpense("rent", 100000, date(t, "2024-01-01"), ""); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if err := ev.Set(90000); err != nil {
		t.Fatalf("Set: %v", err)
	}

	status, err := ev.Check(date(t, "2024-01-15"))
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if status.Spent != 105000 {
		t.Errorf("Spent = %d, want 105000", status.Spent)
	}
	if !status.Exceeded {
		t.Error("Exceeded = false, want true")
	}
	if status.OverBy != 15000 {
		t.Errorf("OverBy = %d, want 15000", status.OverBy)
	}
}

func TestCheckIgnoresOtherMonths(t *testing.T) {
	ev := newTestEvaluator(t)

	if _, err := ev.Store.AddExpense("food", 99999, date(t, "2023-12-31"), ""); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if _, err := ev.Store.AddExpense("food", 1000, date(t, "2024-01-05"), ""); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if err := ev.Set(50000); err != nil {
		t.Fatalf("Set: %v", err)
	}

	status, err := ev.Check(date(t, "2024-01-15"))
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if status.Spent != 1000 {
		t.Errorf("Spent = %d, want 1000 (January only)", status.Spent)
	}
	if status.Exceeded {
		t.Error("Exceeded = true, want false")
	}
}

func TestSetRejectsNonPositive(t *testing.T) {
	ev := newTestEvaluator(t)

	var verr *store.ValidationError
	if err := ev.Set(0); !errors.As(err, &verr) {
		t.Errorf("Set(0) error = %v, want ValidationError", err)
	}
	if err := ev.Set(-1); !errors.As(err, &verr) {
		t.Errorf("Set(-1) error = %v, want ValidationError", err)
	}
}
