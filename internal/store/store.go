// Package store owns the SQLite-backed expense table and the single
// budget setting. All writes are committed before the call returns.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"outlay/internal/model"
	"outlay/internal/period"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when an operation references an id that does
// not exist in the store.
var ErrNotFound = errors.New("record not found")

// ValidationError reports user input rejected before it reaches SQL.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

const budgetKey = "budget_limit"

// Store is the single local expense database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path and applies the
// schema.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddExpense validates and persists one expense, returning the assigned id.
func (s *Store) AddExpense(category string, amount int64, date time.Time, note string) (int64, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return 0, &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if amount <= 0 {
		return 0, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if date.IsZero() {
		return 0, &ValidationError{Field: "date", Reason: "must be a calendar date"}
	}

	res, err := s.db.Exec(
		"INSERT INTO expenses (category, amount, date, note) VALUES (?, ?, ?, ?)",
		category, amount, date.Format(period.DateLayout), note,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new id: %w", err)
	}
	return id, nil
}

// DeleteExpense removes the expense with the given id. Deleting an id
// that does not exist returns ErrNotFound, not an error in the storage
// sense — the store is unchanged either way.
func (s *Store) DeleteExpense(id int64) error {
	res, err := s.db.Exec("DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListExpenses returns expenses matching the filter, newest date first.
func (s *Store) ListExpenses(f model.Filter) ([]model.Expense, error) {
	query := "SELECT id, category, amount, date, note FROM expenses"
	var conds []string
	var args []any

	if f.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, f.Category)
	}
	if !f.From.IsZero() {
		conds = append(conds, "date >= ?")
		args = append(args, f.From.Format(period.DateLayout))
	}
	if !f.To.IsZero() {
		conds = append(conds, "date <= ?")
		args = append(args, f.To.Format(period.DateLayout))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC, id DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		var dateStr string
		if err := rows.Scan(&e.ID, &e.Category, &e.Amount, &dateStr, &e.Note); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}
		e.Date, err = time.Parse(period.DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("stored date %q: %w", dateStr, err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}
	return expenses, nil
}

// Summarize sums amounts by category over the week or month containing
// ref. Categories with no expenses in the window are omitted.
func (s *Store) Summarize(p period.Period, ref time.Time) ([]model.CategoryTotal, error) {
	start, end := period.Range(p, ref)

	rows, err := s.db.Query(
		`SELECT category, SUM(amount) AS total FROM expenses
		 WHERE date >= ? AND date <= ?
		 GROUP BY category ORDER BY total DESC, category ASC`,
		start.Format(period.DateLayout), end.Format(period.DateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("summarizing expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var totals []model.CategoryTotal
	for rows.Next() {
		var ct model.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, fmt.Errorf("scanning summary: %w", err)
		}
		totals = append(totals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("summarizing expenses: %w", err)
	}
	return totals, nil
}

// MonthlyTotal sums all expenses in the calendar month containing ref.
func (s *Store) MonthlyTotal(ref time.Time) (int64, error) {
	start, end := period.MonthRange(ref)

	var total sql.NullInt64
	err := s.db.QueryRow(
		"SELECT SUM(amount) FROM expenses WHERE date >= ? AND date <= ?",
		start.Format(period.DateLayout), end.Format(period.DateLayout),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing month: %w", err)
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

// SetBudget overwrites the monthly budget limit.
func (s *Store) SetBudget(limit int64) error {
	if limit <= 0 {
		return &ValidationError{Field: "budget", Reason: "must be positive"}
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)",
		budgetKey, strconv.FormatInt(limit, 10),
	)
	if err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}
	return nil
}

// BudgetLimit returns the configured monthly limit in cents. The bool
// is false when no budget has been set.
func (s *Store) BudgetLimit() (int64, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", budgetKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading budget: %w", err)
	}
	limit, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("stored budget %q: %w", value, err)
	}
	return limit, true, nil
}

// ExpenseCount returns the number of stored expenses.
func (s *Store) ExpenseCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&count)
	return count, err
}
