package cmd

import (
	"fmt"

	"outlay/internal/cli"
	"outlay/internal/model"
	"outlay/internal/period"

	"github.com/spf13/cobra"
)

var (
	flagListCategory string
	flagListFrom     string
	flagListTo       string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", "Only this category")
	listCmd.Flags().StringVar(&flagListFrom, "from", "", "Earliest date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&flagListTo, "to", "", "Latest date (YYYY-MM-DD)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	filter := model.Filter{Category: flagListCategory}

	var err error
	if flagListFrom != "" {
		filter.From, err = period.ParseDate(flagListFrom)
		if err != nil {
			fmt.Println(cli.Errorf("--from: %v", err))
			return nil
		}
	}
	if flagListTo != "" {
		filter.To, err = period.ParseDate(flagListTo)
		if err != nil {
			fmt.Println(cli.Errorf("--to: %v", err))
			return nil
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	expenses, err := s.ListExpenses(filter)
	if err != nil {
		return err
	}

	if len(expenses) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(expenses))
	var total int64
	for _, e := range expenses {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.ID),
			cli.FormatDate(e.Date),
			e.Category,
			cli.FormatAmount(e.Amount),
			cli.TruncateNote(e.Note, 40),
		})
		total += e.Amount
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "TOTAL", cli.FormatAmount(total), ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Expenses (%d)", len(expenses)),
		Headers: []string{"ID", "Date", "Category", "Amount", "Note"},
		Rows:    rows,
	}))
	return nil
}
