package tui

import (
	"fmt"
	"strings"
	"time"

	"outlay/internal/model"
	"outlay/internal/money"
	"outlay/internal/period"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// addValues backs the add-expense form fields.
type addValues struct {
	category string
	amount   string
	date     string
	note     string
}

// exportValues backs the export form fields.
type exportValues struct {
	path string
	from string
	to   string
}

func validateAmount(s string) error {
	if _, err := money.Parse(s); err != nil {
		return fmt.Errorf("enter a positive amount like 12.50")
	}
	return nil
}

func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := period.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateCategory(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("category must not be empty")
	}
	return nil
}

func (a App) openAddForm() (tea.Model, tea.Cmd) {
	a.addVals = &addValues{date: time.Now().Format(period.DateLayout)}
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Category").
				Placeholder("food, rent, travel, ...").
				Validate(validateCategory).
				Value(&a.addVals.category),
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Validate(validateAmount).
				Value(&a.addVals.amount),
			huh.NewInput().
				Title("Date").
				Validate(validateDate).
				Value(&a.addVals.date),
			huh.NewInput().
				Title("Note (optional)").
				Value(&a.addVals.note),
		).Title("Add Expense"),
	)
	a.formOpen = formAdd
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) openBudgetForm() (tea.Model, tea.Cmd) {
	a.budgetVal = new(string)
	if a.status.Configured {
		*a.budgetVal = money.Format(a.status.Limit)
	}
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly budget limit").
				Placeholder("900.00").
				Validate(validateAmount).
				Value(a.budgetVal),
		).Title("Set Budget"),
	)
	a.formOpen = formBudget
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) openExportForm() (tea.Model, tea.Cmd) {
	a.exportVals = &exportValues{path: "expenses.csv"}
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Destination file").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("a destination path is required")
					}
					return nil
				}).
				Value(&a.exportVals.path),
			huh.NewInput().
				Title("Start date (optional)").
				Validate(validateDate).
				Value(&a.exportVals.from),
			huh.NewInput().
				Title("End date (optional)").
				Validate(validateDate).
				Value(&a.exportVals.to),
		).Title("Export CSV"),
	)
	a.formOpen = formExport
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) openDeleteForm(e model.Expense) (tea.Model, tea.Cmd) {
	a.deleteID = e.ID
	a.confirmDelete = new(bool)
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete expense #%d?", e.ID)).
				Description(fmt.Sprintf("%s  %s  %s",
					e.Date.Format(period.DateLayout), e.Category, money.Format(e.Amount))).
				Affirmative("Delete").
				Negative("Keep").
				Value(a.confirmDelete),
		),
	)
	a.formOpen = formDelete
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

// parseDateOrToday treats a blank date field as today.
func parseDateOrToday(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Now(), nil
	}
	return period.ParseDate(s)
}
