// Package model defines the domain types shared by the store, the
// budget evaluator, and both front-ends.
package model

import "time"

// Expense is one recorded transaction. Amount is integer cents and is
// always positive for a stored record.
type Expense struct {
	ID       int64
	Category string
	Amount   int64
	Date     time.Time
	Note     string
}

// Filter narrows a ListExpenses call. Zero values mean "no constraint":
// empty Category matches everything, zero From/To leave that bound open.
type Filter struct {
	Category string
	From     time.Time
	To       time.Time
}

// CategoryTotal is one row of a period summary.
type CategoryTotal struct {
	Category string
	Total    int64
}

// BudgetStatus is the result of checking a month's spend against the
// configured limit. Configured is false when no limit has been set; in
// that case Exceeded is always false and OverBy is 0.
type BudgetStatus struct {
	Limit      int64
	Spent      int64
	OverBy     int64
	Exceeded   bool
	Configured bool
}
