package cmd

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"outlay/internal/budget"
	"outlay/internal/cli"
	"outlay/internal/money"
	"outlay/internal/period"

	"github.com/spf13/cobra"
)

var (
	flagAddCategory string
	flagAddAmount   string
	flagAddDate     string
	flagAddNote     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	Long:  "Record an expense. Fields not given as flags are prompted for interactively.",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Expense category (food, rent, travel, ...)")
	addCmd.Flags().StringVarP(&flagAddAmount, "amount", "a", "", "Amount, e.g. 12.50")
	addCmd.Flags().StringVarP(&flagAddDate, "date", "t", "", "Date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVarP(&flagAddNote, "note", "n", "", "Optional note")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	category := flagAddCategory
	if category == "" {
		category = prompt(reader, "Category (food, rent, travel, ...)")
	}
	if category == "" {
		fmt.Println(cli.Errorf("category must not be empty"))
		return nil
	}

	amountStr := flagAddAmount
	if amountStr == "" {
		amountStr = prompt(reader, "Amount")
	}
	amount, err := money.Parse(amountStr)
	if err != nil {
		fmt.Println(cli.Errorf("amount %q: must be a positive number like 12.50", amountStr))
		return nil
	}

	dateStr := flagAddDate
	if dateStr == "" && flagAddCategory == "" {
		// Interactive mode also prompts for the date
		dateStr = prompt(reader, "Date (YYYY-MM-DD, blank for today)")
	}
	date := time.Now()
	if dateStr != "" {
		date, err = period.ParseDate(dateStr)
		if err != nil {
			fmt.Println(cli.Errorf("%v", err))
			return nil
		}
	}

	note := flagAddNote
	if note == "" && flagAddCategory == "" {
		note = prompt(reader, "Note (optional)")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	id, err := s.AddExpense(category, amount, date, note)
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Println(cli.OK(fmt.Sprintf("Added expense #%d: %s %s on %s",
			id, category, cli.FormatAmount(amount), cli.FormatDate(date))))
	}

	printBudgetWarning(budget.New(s), date)
	return nil
}
