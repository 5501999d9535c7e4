package tui

import (
	"fmt"
	"strings"
	"time"

	"outlay/internal/cli"
	"outlay/internal/period"
	"outlay/internal/tui/components"
	"outlay/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateSummary(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "w":
		a.summaryPeriod = period.Week
	case "m":
		a.summaryPeriod = period.Month
	}
	return a, nil
}

func (a App) renderSummary(cw int) string {
	t := theme.Active
	now := time.Now()

	totals, err := a.store.Summarize(a.summaryPeriod, now)
	if err != nil {
		return components.ContentCard("Summary",
			lipgloss.NewStyle().Foreground(t.Red).Render(fmt.Sprintf("Storage unavailable: %v", err)), cw)
	}

	start, end := period.Range(a.summaryPeriod, now)

	var sum int64
	for _, ct := range totals {
		sum += ct.Total
	}

	// Metric cards: period total, budget, remaining/over
	budgetValue := "not set"
	remainValue := "—"
	if a.status.Configured {
		budgetValue = cli.FormatAmount(a.status.Limit)
		if a.status.Exceeded {
			remainValue = "over by " + cli.FormatAmount(a.status.OverBy)
		} else {
			remainValue = cli.FormatAmount(a.status.Limit-a.status.Spent) + " left"
		}
	}

	periodLabel := "Month total"
	if a.summaryPeriod == period.Week {
		periodLabel = "Week total"
	}

	widths := components.LayoutRow(cw, 3)
	cards := components.CardRow([]string{
		components.MetricCard(periodLabel, cli.FormatAmount(sum), widths[0]),
		components.MetricCard("Monthly budget", budgetValue, widths[1]),
		components.MetricCard("This month", remainValue, widths[2]),
	})

	// Category breakdown
	var b strings.Builder
	if len(totals) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render("No expenses in this period."))
	} else {
		catStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		amtStyle := lipgloss.NewStyle().Foreground(t.Green)
		barStyle := lipgloss.NewStyle().Foreground(t.Accent)

		maxTotal := totals[0].Total
		inner := components.CardInnerWidth(cw)
		barMax := inner - 32
		if barMax < 10 {
			barMax = 10
		}

		for _, ct := range totals {
			barLen := 0
			if maxTotal > 0 {
				barLen = int(float64(barMax) * float64(ct.Total) / float64(maxTotal))
			}
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				catStyle.Render(fmt.Sprintf("%-14s", cli.TruncateNote(ct.Category, 14))),
				amtStyle.Render(fmt.Sprintf("%12s", cli.FormatAmount(ct.Total))),
				barStyle.Render(strings.Repeat("█", barLen)),
			))
		}
	}

	title := fmt.Sprintf("By category  %s to %s  [w]eek [m]onth",
		cli.FormatDate(start), cli.FormatDate(end))
	breakdown := components.ContentCard(title, b.String(), cw)

	warning := ""
	if a.status.Exceeded {
		warning = "\n" + lipgloss.NewStyle().Foreground(t.Orange).Bold(true).
			Render(fmt.Sprintf(" ! monthly spend %s exceeds budget %s",
				cli.FormatAmount(a.status.Spent), cli.FormatAmount(a.status.Limit)))
	}

	return cards + "\n" + breakdown + warning
}
