package tui

import (
	"fmt"
	"strings"

	"outlay/internal/cli"
	"outlay/internal/model"
	"outlay/internal/tui/components"
	"outlay/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// entriesState holds the entries tab state.
type entriesState struct {
	cursor int
	offset int // scroll offset for the list

	searching   bool
	searchInput textinput.Model
	searchQuery string
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "category or note..."
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

// visibleEntries applies the search query to the loaded expenses.
func (a App) visibleEntries() []model.Expense {
	q := strings.ToLower(strings.TrimSpace(a.entries.searchQuery))
	if q == "" {
		return a.expenses
	}
	var out []model.Expense
	for _, e := range a.expenses {
		if strings.Contains(strings.ToLower(e.Category), q) ||
			strings.Contains(strings.ToLower(e.Note), q) {
			out = append(out, e)
		}
	}
	return out
}

func (a App) updateEntries(key string) (tea.Model, tea.Cmd) {
	visible := a.visibleEntries()

	switch key {
	case "/":
		a.entries.searching = true
		a.entries.searchInput = newSearchInput()
		a.entries.searchInput.SetValue(a.entries.searchQuery)
		a.entries.searchInput.Focus()
		return a, a.entries.searchInput.Cursor.BlinkCmd()

	case "esc":
		if a.entries.searchQuery != "" {
			a.entries.searchQuery = ""
			a.entries.cursor = 0
			a.entries.offset = 0
		}

	case "j", "down":
		if a.entries.cursor < len(visible)-1 {
			a.entries.cursor++
		}

	case "k", "up":
		if a.entries.cursor > 0 {
			a.entries.cursor--
		}

	case "g":
		a.entries.cursor = 0
		a.entries.offset = 0

	case "G":
		a.entries.cursor = len(visible) - 1
		if a.entries.cursor < 0 {
			a.entries.cursor = 0
		}

	case "d":
		if a.entries.cursor < len(visible) {
			return a.openDeleteForm(visible[a.entries.cursor])
		}
	}
	return a, nil
}

func (a App) updateEntriesSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.entries.searching = false
		a.entries.searchQuery = a.entries.searchInput.Value()
		a.entries.cursor = 0
		a.entries.offset = 0
		return a, nil
	case "esc":
		a.entries.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.entries.searchInput, cmd = a.entries.searchInput.Update(msg)
	return a, cmd
}

func (a App) renderEntries(cw int) string {
	t := theme.Active
	visible := a.visibleEntries()

	if a.entries.searching {
		bar := lipgloss.NewStyle().Foreground(t.Accent).Render(" search: ") +
			a.entries.searchInput.View()
		return bar + "\n\n" + a.renderEntryList(visible, cw)
	}

	header := ""
	if a.entries.searchQuery != "" {
		header = lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(fmt.Sprintf(" filter: %q (%d matches, esc to clear)", a.entries.searchQuery, len(visible))) + "\n\n"
	}

	return header + a.renderEntryList(visible, cw)
}

func (a App) renderEntryList(visible []model.Expense, cw int) string {
	t := theme.Active

	if len(visible) == 0 {
		return components.ContentCard("Entries",
			lipgloss.NewStyle().Foreground(t.TextMuted).Render("No expenses recorded. Press [a] to add one."), cw)
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)

	inner := components.CardInnerWidth(cw)

	rows := a.height - 12 // tab bar, card border, header, status bar
	if rows < 5 {
		rows = 5
	}

	offset := a.entries.offset
	if a.entries.cursor < offset {
		offset = a.entries.cursor
	}
	if a.entries.cursor >= offset+rows {
		offset = a.entries.cursor - rows + 1
	}

	end := offset + rows
	if end > len(visible) {
		end = len(visible)
	}

	noteWidth := inner - 38
	if noteWidth < 8 {
		noteWidth = 8
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %-11s %-12s %10s  %s",
		"ID", "Date", "Category", "Amount", "Note")))
	b.WriteString("\n")

	for i := offset; i < end; i++ {
		e := visible[i]
		line := fmt.Sprintf("%-5d %-11s %-12s %10s  %s",
			e.ID,
			cli.FormatDate(e.Date),
			cli.TruncateNote(e.Category, 12),
			cli.FormatAmount(e.Amount),
			cli.TruncateNote(e.Note, noteWidth),
		)
		if len(line) > inner {
			line = line[:inner]
		}
		if i == a.entries.cursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	title := fmt.Sprintf("Entries (%d)", len(visible))
	return components.ContentCard(title, b.String(), cw)
}
