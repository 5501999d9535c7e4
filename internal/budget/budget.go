// Package budget evaluates monthly spend against the configured limit.
// The check is advisory: it never blocks an add, it only informs the
// front-end afterwards.
package budget

import (
	"time"

	"outlay/internal/model"
	"outlay/internal/store"
)

// Evaluator checks spend against the budget stored alongside expenses.
type Evaluator struct {
	Store *store.Store
}

// New returns an Evaluator over the given store.
func New(s *store.Store) *Evaluator {
	return &Evaluator{Store: s}
}

// Set overwrites the monthly limit. A non-positive limit is rejected by
// the store as a validation error.
func (e *Evaluator) Set(limit int64) error {
	return e.Store.SetBudget(limit)
}

// Check compares the calendar month containing ref against the limit.
// With no limit configured the status reports Exceeded=false, OverBy=0.
func (e *Evaluator) Check(ref time.Time) (model.BudgetStatus, error) {
	limit, configured, err := e.Store.BudgetLimit()
	if err != nil {
		return model.BudgetStatus{}, err
	}

	spent, err := e.Store.MonthlyTotal(ref)
	if err != nil {
		return model.BudgetStatus{}, err
	}

	status := model.BudgetStatus{
		Limit:      limit,
		Spent:      spent,
		Configured: configured,
	}
	if configured && spent > limit {
		status.Exceeded = true
		status.OverBy = spent - limit
	}
	return status, nil
}
