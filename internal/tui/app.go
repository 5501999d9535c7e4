// Package tui provides the interactive Bubble Tea dashboard for outlay.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"outlay/internal/budget"
	"outlay/internal/cli"
	"outlay/internal/config"
	"outlay/internal/export"
	"outlay/internal/model"
	"outlay/internal/money"
	"outlay/internal/period"
	"outlay/internal/store"
	"outlay/internal/tui/components"
	"outlay/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// formKind identifies which modal form is currently open.
type formKind int

const (
	formNone formKind = iota
	formAdd
	formBudget
	formExport
	formDelete
)

// App is the root Bubble Tea model. Every user action runs its store
// operation synchronously inside Update; there is exactly one active
// operation at a time.
type App struct {
	store *store.Store
	ev    *budget.Evaluator
	cfg   config.Config

	// Data, reloaded after every mutation
	expenses []model.Expense
	status   model.BudgetStatus

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Modal overlay: a message shown over everything until dismissed.
	modal       string
	modalIsWarn bool

	// Active form (add / budget / export / delete confirm). The backing
	// values are pointers: the form writes through them, and they must
	// survive the model being copied between Update calls.
	form          *huh.Form
	formOpen      formKind
	addVals       *addValues
	budgetVal     *string
	exportVals    *exportValues
	confirmDelete *bool
	deleteID      int64

	// Per-tab state
	entries       entriesState
	summaryPeriod period.Period
	settings      settingsState
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
)

// NewApp creates the dashboard model over an open store. The expense
// table is read synchronously; local disk access is fast enough that no
// loading screen is needed.
func NewApp(s *store.Store, cfg config.Config) App {
	a := App{
		store: s,
		ev:    budget.New(s),
		cfg:   cfg,
	}
	if p, err := period.ParsePeriod(cfg.General.DefaultPeriod); err == nil {
		a.summaryPeriod = p
	} else {
		a.summaryPeriod = period.Month
	}
	a.reload()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// reload refreshes the entry list and budget status from the store.
// Storage failures surface as a modal; the dashboard keeps running on
// the last good data.
func (a *App) reload() {
	expenses, err := a.store.ListExpenses(model.Filter{})
	if err != nil {
		a.setModal(fmt.Sprintf("Storage unavailable: %v", err), true)
		return
	}
	a.expenses = expenses

	status, err := a.ev.Check(time.Now())
	if err != nil {
		a.setModal(fmt.Sprintf("Storage unavailable: %v", err), true)
		return
	}
	a.status = status

	if a.entries.cursor >= len(a.visibleEntries()) {
		a.entries.cursor = len(a.visibleEntries()) - 1
	}
	if a.entries.cursor < 0 {
		a.entries.cursor = 0
	}
}

func (a *App) setModal(msg string, warn bool) {
	a.modal = msg
	a.modalIsWarn = warn
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Modal message intercepts all keys; any key dismisses
		if a.modal != "" {
			a.modal = ""
			return a, nil
		}

		// Active form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		// Settings editing intercepts keys
		if a.activeTab == 2 && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Entries search mode intercepts keys
		if a.activeTab == 0 && a.entries.searching {
			return a.updateEntriesSearch(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit

		case "a":
			return a.openAddForm()

		case "b":
			return a.openBudgetForm()

		case "c":
			return a.openExportForm()

		case "e", "s", "x":
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}

		// Tab-specific keys
		switch a.activeTab {
		case 0:
			return a.updateEntries(key)
		case 1:
			return a.updateSummary(key)
		case 2:
			return a.updateSettings(key)
		}
		return a, nil
	}

	// Forward unhandled messages to the active form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}
	if a.activeTab == 0 && a.entries.searching {
		var cmd tea.Cmd
		a.entries.searchInput, cmd = a.entries.searchInput.Update(msg)
		return a, cmd
	}
	if a.activeTab == 2 && a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

// updateForm forwards a message to the open form and applies the
// operation when the form completes.
func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formOpen = formNone
		return a, nil
	}

	if a.form.State != huh.StateCompleted {
		return a, cmd
	}

	kind := a.formOpen
	a.form = nil
	a.formOpen = formNone

	switch kind {
	case formAdd:
		a.submitAdd()
	case formBudget:
		a.submitBudget()
	case formExport:
		a.submitExport()
	case formDelete:
		a.submitDelete()
	}
	return a, nil
}

func (a *App) submitAdd() {
	// Field validators already ran; parse failures here would be a bug.
	amount, err := money.Parse(a.addVals.amount)
	if err != nil {
		a.setModal(fmt.Sprintf("Invalid amount: %v", err), true)
		return
	}
	date, err := parseDateOrToday(a.addVals.date)
	if err != nil {
		a.setModal(fmt.Sprintf("Invalid date: %v", err), true)
		return
	}

	_, err = a.store.AddExpense(a.addVals.category, amount, date, a.addVals.note)
	if err != nil {
		a.setModal(fmt.Sprintf("Could not add expense: %v", err), true)
		return
	}
	a.reload()

	// Advisory budget check for the entry's month
	status, err := a.ev.Check(date)
	if err == nil && status.Exceeded {
		a.setModal(fmt.Sprintf(
			"Budget exceeded!\n\nMonthly spend %s is over your budget %s by %s.",
			cli.FormatAmount(status.Spent),
			cli.FormatAmount(status.Limit),
			cli.FormatAmount(status.OverBy),
		), true)
	}
}

func (a *App) submitBudget() {
	limit, err := money.Parse(*a.budgetVal)
	if err != nil {
		a.setModal(fmt.Sprintf("Invalid budget: %v", err), true)
		return
	}
	if err := a.ev.Set(limit); err != nil {
		a.setModal(fmt.Sprintf("Could not save budget: %v", err), true)
		return
	}
	a.reload()
	a.setModal(fmt.Sprintf("Monthly budget set to %s.", cli.FormatAmount(limit)), false)
}

func (a *App) submitExport() {
	path := strings.TrimSpace(a.exportVals.path)
	if path == "" {
		return
	}

	var filter model.Filter
	var err error
	if a.exportVals.from != "" {
		filter.From, err = period.ParseDate(a.exportVals.from)
		if err != nil {
			a.setModal(fmt.Sprintf("Invalid start date: %v", err), true)
			return
		}
	}
	if a.exportVals.to != "" {
		filter.To, err = period.ParseDate(a.exportVals.to)
		if err != nil {
			a.setModal(fmt.Sprintf("Invalid end date: %v", err), true)
			return
		}
	}

	count, err := export.WriteFile(a.store, path, filter)
	if err != nil {
		a.setModal(fmt.Sprintf("Export failed: %v", err), true)
		return
	}
	a.setModal(fmt.Sprintf("Exported %d records to %s.", count, path), false)
}

func (a *App) submitDelete() {
	if a.confirmDelete == nil || !*a.confirmDelete {
		return
	}
	err := a.store.DeleteExpense(a.deleteID)
	if errors.Is(err, store.ErrNotFound) {
		a.setModal(fmt.Sprintf("No expense with id %d.", a.deleteID), true)
		return
	}
	if err != nil {
		a.setModal(fmt.Sprintf("Could not delete: %v", err), true)
		return
	}
	a.reload()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  outlay needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}

	if a.modal != "" {
		return a.viewModal()
	}

	if a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	cw := a.contentWidth()

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderEntries(cw)
	case 1:
		content = a.renderSummary(cw)
	case 2:
		content = a.renderSettings(cw)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab, cw))
	b.WriteString("\n\n")
	b.WriteString(content)

	body := b.String()

	// Pin the status bar to the bottom
	lines := strings.Count(body, "\n") + 1
	pad := a.height - lines - 1
	for i := 0; i < pad; i++ {
		body += "\n"
	}
	body += components.RenderStatusBar(a.width, len(a.expenses))

	return body
}

func (a App) viewModal() string {
	t := theme.Active

	borderColor := t.BorderAccent
	if a.modalIsWarn {
		borderColor = t.Orange
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 3)

	msgStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	card := cardStyle.Render(
		msgStyle.Render(a.modal) + "\n\n" + hintStyle.Render("press any key to dismiss"),
	)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	bindings := []struct{ key, desc string }{
		{"e s x", "Jump to tab"},
		{"← →", "Previous / next tab"},
		{"j k", "Navigate entries"},
		{"/", "Search entries"},
		{"a", "Add expense"},
		{"d", "Delete selected entry"},
		{"b", "Set monthly budget"},
		{"c", "Export to CSV"},
		{"w m", "Week / month summary"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			keyStyle.Render(fmt.Sprintf("%8s", bind.key)),
			descStyle.Render(bind.desc)))
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}
