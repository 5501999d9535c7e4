package tui

import (
	"fmt"
	"strings"

	"outlay/internal/cli"
	"outlay/internal/config"
	"outlay/internal/money"
	"outlay/internal/period"
	"outlay/internal/tui/components"
	"outlay/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const settingsFieldCount = 3

// Settings tab fields, addressed by cursor index.
const (
	settingBudget = iota
	settingPeriod
	settingTheme
)

// settingsState holds the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	errMsg  string
}

func (a App) updateSettings(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case "enter":
		return a.settingsActivate()
	}
	return a, nil
}

// settingsActivate edits the budget via text input, and toggles the
// period and theme directly.
func (a App) settingsActivate() (tea.Model, tea.Cmd) {
	a.settings.errMsg = ""

	switch a.settings.cursor {
	case settingBudget:
		ti := textinput.New()
		ti.Placeholder = "900.00"
		ti.CharLimit = 16
		ti.Width = 16
		if a.status.Configured {
			ti.SetValue(money.Format(a.status.Limit))
		}
		ti.Focus()
		a.settings.input = ti
		a.settings.editing = true
		return a, ti.Cursor.BlinkCmd()

	case settingPeriod:
		if a.cfg.General.DefaultPeriod == "week" {
			a.cfg.General.DefaultPeriod = "month"
			a.summaryPeriod = period.Month
		} else {
			a.cfg.General.DefaultPeriod = "week"
			a.summaryPeriod = period.Week
		}
		// Best-effort persist; the session keeps the new value either way
		_ = config.Save(a.cfg)

	case settingTheme:
		next := 0
		for i, th := range theme.All {
			if th.Name == theme.Active.Name {
				next = (i + 1) % len(theme.All)
			}
		}
		theme.SetActive(theme.All[next].Name)
		a.cfg.Appearance.Theme = theme.All[next].Name
		_ = config.Save(a.cfg)
	}
	return a, nil
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		limit, err := money.Parse(a.settings.input.Value())
		if err != nil {
			a.settings.errMsg = "enter a positive amount like 900.00"
			return a, nil
		}
		if err := a.ev.Set(limit); err != nil {
			a.settings.errMsg = fmt.Sprintf("could not save: %v", err)
			return a, nil
		}
		a.settings.editing = false
		a.reload()
		return a, nil
	case "esc":
		a.settings.editing = false
		a.settings.errMsg = ""
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a App) renderSettings(cw int) string {
	t := theme.Active
	ss := a.settings

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	budgetValue := "not set"
	if a.status.Configured {
		budgetValue = cli.FormatAmount(a.status.Limit)
	}

	rows := []struct{ label, value string }{
		{"Monthly budget", budgetValue},
		{"Default period", a.cfg.General.DefaultPeriod},
		{"Theme", theme.Active.Name},
	}

	var b strings.Builder
	for i, row := range rows {
		marker := "  "
		style := labelStyle
		if i == ss.cursor {
			marker = "> "
			style = selectedStyle
		}

		value := valueStyle.Render(row.value)
		if i == settingBudget && ss.editing {
			value = ss.input.View()
		}

		b.WriteString(fmt.Sprintf("%s%s  %s\n", marker, style.Render(fmt.Sprintf("%-16s", row.label)), value))
	}

	if ss.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("  " + ss.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("  j/k to select, enter to edit or toggle, esc to cancel"))

	return components.ContentCard("Settings", b.String(), cw)
}
