// Package export writes the full expense table to a CSV snapshot.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"outlay/internal/model"
	"outlay/internal/money"
	"outlay/internal/period"
	"outlay/internal/store"
)

// Header is the first row of every export file.
var Header = []string{"id", "category", "amount", "date", "note"}

// CSV writes the given expenses to w, header first.
func CSV(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)

	records := make([][]string, 0, len(expenses)+1)
	records = append(records, Header)
	for _, e := range expenses {
		records = append(records, []string{
			strconv.FormatInt(e.ID, 10),
			e.Category,
			money.Format(e.Amount),
			e.Date.Format(period.DateLayout),
			e.Note,
		})
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// WriteFile exports every expense matching the filter to path,
// overwriting any existing file, and returns the record count. A zero
// filter exports everything.
func WriteFile(s *store.Store, path string, f model.Filter) (int, error) {
	expenses, err := s.ListExpenses(f)
	if err != nil {
		return 0, err
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}

	if err := CSV(file, expenses); err != nil {
		_ = file.Close()
		return 0, err
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("closing %s: %w", path, err)
	}
	return len(expenses), nil
}
