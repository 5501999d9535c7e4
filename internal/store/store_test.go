package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"outlay/internal/model"
	"outlay/internal/period"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "outlay.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := period.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestAddExpenseRoundtrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddExpense("food", 5000, date(t, "2024-01-05"), "lunch")
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if id <= 0 {
		t.Fatalf("AddExpense id = %d, want positive", id)
	}

	id2, err := s.AddExpense("food", 1200, date(t, "2024-01-06"), "")
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if id2 == id {
		t.Fatalf("second AddExpense reused id %d", id)
	}

	expenses, err := s.ListExpenses(model.Filter{})
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("ListExpenses returned %d rows, want 2", len(expenses))
	}

	var found *model.Expense
	for i := range expenses {
		if expenses[i].ID == id {
			found = &expenses[i]
		}
	}
	if found == nil {
		t.Fatalf("expense %d not in list", id)
	}
	if found.Category != "food" || found.Amount != 5000 || found.Note != "lunch" {
		t.Errorf("stored expense = %+v, want food/5000/lunch", found)
	}
	if !found.Date.Equal(date(t, "2024-01-05")) {
		t.Errorf("stored date = %s, want 2024-01-05", found.Date)
	}
}

func TestAddExpenseValidation(t *testing.T) {
	s := newTestStore(t)
	valid := date(t, "2024-01-05")

	tests := []struct {
		name     string
		category string
		amount   int64
		date     time.Time
	}{
		{"empty category", "", 100, valid},
		{"blank category", "   ", 100, valid},
		{"zero amount", "food", 0, valid},
		{"negative amount", "food", -100, valid},
		{"zero date", "food", 100, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddExpense(tt.category, tt.amount, tt.date, "")
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("AddExpense error = %v, want ValidationError", err)
			}
		})
	}

	// Nothing should have been persisted
	expenses, err := s.ListExpenses(model.Filter{})
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("store has %d rows after rejected adds, want 0", len(expenses))
	}
}

func TestDeleteExpense(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddExpense("travel", 8000, date(t, "2024-02-10"), "")
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	if err := s.DeleteExpense(id); err != nil {
		t.Fatalf("DeleteExpense: %v", err)
	}

	expenses, err := s.ListExpenses(model.Filter{})
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	for _, e := range expenses {
		if e.ID == id {
			t.Errorf("expense %d still listed after delete", id)
		}
	}

	// Second delete of the same id reports not found
	if err := s.DeleteExpense(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteExpense error = %v, want ErrNotFound", err)
	}

	if err := s.DeleteExpense(99999); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteExpense(99999) error = %v, want ErrNotFound", err)
	}
}

func TestListExpensesFilter(t *testing.T) {
	s := newTestStore(t)

	seed := []struct {
		category string
		amount   int64
		date     string
	}{
		{"food", 1000, "2024-01-05"},
		{"food", 2000, "2024-02-05"},
		{"rent", 90000, "2024-01-01"},
		{"travel", 5000, "2024-03-15"},
	}
	for _, e := range seed {
		if _, err := s.AddExpense(e.category, e.amount, date(t, e.date), ""); err != nil {
			t.Fatalf("AddExpense: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter model.Filter
		want   int
	}{
		{"no filter", model.Filter{}, 4},
		{"by category", model.Filter{Category: "food"}, 2},
		{"unknown category", model.Filter{Category: "gifts"}, 0},
		{"from", model.Filter{From: date(t, "2024-02-01")}, 2},
		{"to", model.Filter{To: date(t, "2024-01-31")}, 2},
		{"range", model.Filter{From: date(t, "2024-01-02"), To: date(t, "2024-02-28")}, 2},
		{"category and range", model.Filter{Category: "food", From: date(t, "2024-02-01")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListExpenses(tt.filter)
			if err != nil {
				t.Fatalf("ListExpenses: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("ListExpenses returned %d rows, want %d", len(got), tt.want)
			}
		})
	}
}

func TestListExpensesStable(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := s.AddExpense("food", int64(100*(i+1)), date(t, "2024-01-05"), ""); err != nil {
			t.Fatalf("AddExpense: %v", err)
		}
	}

	first, err := s.ListExpenses(model.Filter{})
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	second, err := s.ListExpenses(model.Filter{})
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two ListExpenses calls with no mutation returned different results")
	}
}

func TestSummarizeMonth(t *testing.T) {
	s := newTestStore(t)

	seed := []struct {
		category string
		amount   int64
		date     string
	}{
		{"food", 5000, "2024-01-05"},
		{"food", 3000, "2024-01-20"},
		{"rent", 100000, "2024-01-01"},
		{"food", 9999, "2024-02-05"}, // outside the window
	}
	for _, e := range seed {
		if _, err := s.AddExpense(e.category, e.amount, date(t, e.date), ""); err != nil {
			t.Fatalf("AddExpense: %v", err)
		}
	}

	totals, err := s.Summarize(period.Month, date(t, "2024-01-15"))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	want := []model.CategoryTotal{
		{Category: "rent", Total: 100000},
		{Category: "food", Total: 8000},
	}
	if !reflect.DeepEqual(totals, want) {
		t.Errorf("Summarize = %+v, want %+v", totals, want)
	}

	// Sum over categories equals the monthly total
	var sum int64
	for _, ct := range totals {
		sum += ct.Total
	}
	monthly, err := s.MonthlyTotal(date(t, "2024-01-15"))
	if err != nil {
		t.Fatalf("MonthlyTotal: %v", err)
	}
	if sum != monthly {
		t.Errorf("summary sum %d != MonthlyTotal %d", sum, monthly)
	}
}

func TestSummarizeWeek(t *testing.T) {
	s := newTestStore(t)

	// 2024-01-15 is a Monday; the week runs through Sunday 2024-01-21.
	seed := []struct {
		amount int64
		date   string
	}{
		{1000, "2024-01-15"},
		{2000, "2024-01-21"},
		{4000, "2024-01-14"}, // previous week
		{8000, "2024-01-22"}, // next week
	}
	for _, e := range seed {
		if _, err := s.AddExpense("food", e.amount, date(t, e.date), ""); err != nil {
			t.Fatalf("AddExpense: %v", err)
		}
	}

	totals, err := s.Summarize(period.Week, date(t, "2024-01-17"))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(totals) != 1 || totals[0].Total != 3000 {
		t.Errorf("week summary = %+v, want food: 3000", totals)
	}
}

func TestMonthlyTotalEmpty(t *testing.T) {
	s := newTestStore(t)

	total, err := s.MonthlyTotal(date(t, "2024-06-15"))
	if err != nil {
		t.Fatalf("MonthlyTotal: %v", err)
	}
	if total != 0 {
		t.Errorf("MonthlyTotal on empty store = %d, want 0", total)
	}
}

func TestBudgetRoundtrip(t *testing.T) {
	s := newTestStore(t)

	_, configured, err := s.BudgetLimit()
	if err != nil {
		t.Fatalf("BudgetLimit: %v", err)
	}
	if configured {
		t.Fatal("fresh store reports a configured budget")
	}

	if err := s.SetBudget(50000); err != nil {
		t.Fatalf("SetBudget: %v", err)
	}
	limit, configured, err := s.BudgetLimit()
	if err != nil {
		t.Fatalf("BudgetLimit: %v", err)
	}
	if !configured || limit != 50000 {
		t.Errorf("BudgetLimit = %d/%v, want 50000/true", limit, configured)
	}

	// Overwrites, keeps no history
	if err := s.SetBudget(90000); err != nil {
		t.Fatalf("SetBudget: %v", err)
	}
	limit, _, err = s.BudgetLimit()
	if err != nil {
		t.Fatalf("BudgetLimit: %v", err)
	}
	if limit != 90000 {
		t.Errorf("BudgetLimit after overwrite = %d, want 90000", limit)
	}

	var verr *ValidationError
	if err := s.SetBudget(0); !errors.As(err, &verr) {
		t.Errorf("SetBudget(0) error = %v, want ValidationError", err)
	}
	if err := s.SetBudget(-100); !errors.As(err, &verr) {
		t.Errorf("SetBudget(-100) error = %v, want ValidationError", err)
	}
}

func TestExpenseCount(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := s.AddExpense("food", 100, date(t, "2024-01-05"), ""); err != nil {
			t.Fatalf("AddExpense: %v", err)
		}
	}

	count, err := s.ExpenseCount()
	if err != nil {
		t.Fatalf("ExpenseCount: %v", err)
	}
	if count != 3 {
		t.Errorf("ExpenseCount = %d, want 3", count)
	}
}
