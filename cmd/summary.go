package cmd

import (
	"fmt"
	"strings"
	"time"

	"outlay/internal/budget"
	"outlay/internal/cli"
	"outlay/internal/config"
	"outlay/internal/period"

	"github.com/spf13/cobra"
)

var (
	flagSumPeriod   string
	flagSumDate     string
	flagSumCategory string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending totals by category for a week or month",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&flagSumPeriod, "period", "p", "", "Aggregation window: week or month (default from config)")
	summaryCmd.Flags().StringVarP(&flagSumDate, "date", "t", "", "Reference date (YYYY-MM-DD, default today)")
	summaryCmd.Flags().StringVarP(&flagSumCategory, "category", "c", "", "Only this category")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	periodStr := flagSumPeriod
	if periodStr == "" {
		periodStr = cfg.General.DefaultPeriod
	}
	p, err := period.ParsePeriod(periodStr)
	if err != nil {
		fmt.Println(cli.Errorf("%v", err))
		return nil
	}

	ref := time.Now()
	if flagSumDate != "" {
		ref, err = period.ParseDate(flagSumDate)
		if err != nil {
			fmt.Println(cli.Errorf("--date: %v", err))
			return nil
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	totals, err := s.Summarize(p, ref)
	if err != nil {
		return err
	}
	if flagSumCategory != "" {
		n := 0
		for _, ct := range totals {
			if ct.Category == flagSumCategory {
				totals[n] = ct
				n++
			}
		}
		totals = totals[:n]
	}

	start, end := period.Range(p, ref)
	title := fmt.Sprintf("%s SUMMARY  %s to %s", strings.ToUpper(p.String()), cli.FormatDate(start), cli.FormatDate(end))

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	if len(totals) == 0 {
		fmt.Println("  No expenses found for this period.")
		return nil
	}

	var sum int64
	rows := make([][]string, 0, len(totals)+2)
	for _, ct := range totals {
		rows = append(rows, []string{ct.Category, cli.FormatAmount(ct.Total)})
		sum += ct.Total
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", cli.FormatAmount(sum)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Amount"},
		Rows:    rows,
	}))

	// Budget status is a monthly concept; show it when summarizing a month.
	if p == period.Month {
		ev := budget.New(s)
		status, err := ev.Check(ref)
		if err != nil {
			return err
		}
		if status.Configured {
			fmt.Printf("\n  Budget: %s  Spent: %s\n",
				cli.FormatAmount(status.Limit), cli.FormatAmount(status.Spent))
			if status.Exceeded {
				fmt.Println(cli.Warning(fmt.Sprintf("over budget by %s", cli.FormatAmount(status.OverBy))))
			}
		}
	}
	return nil
}
