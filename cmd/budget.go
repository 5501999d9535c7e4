package cmd

import (
	"fmt"
	"time"

	"outlay/internal/budget"
	"outlay/internal/cli"
	"outlay/internal/money"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget [limit]",
	Short: "Show or set the monthly budget limit",
	Long:  "With no argument, show this month's spend against the configured limit. With an amount, set a new limit.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	ev := budget.New(s)

	if len(args) == 1 {
		limit, err := money.Parse(args[0])
		if err != nil {
			fmt.Println(cli.Errorf("limit %q: must be a positive number like 900.00", args[0]))
			return nil
		}
		if err := ev.Set(limit); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Println(cli.OK(fmt.Sprintf("Monthly budget set to %s", cli.FormatAmount(limit))))
		}
		return nil
	}

	status, err := ev.Check(time.Now())
	if err != nil {
		return err
	}

	if !status.Configured {
		fmt.Println("\n  No budget configured. Set one with `outlay budget <limit>`.")
		fmt.Printf("  Spent this month: %s\n", cli.FormatAmount(status.Spent))
		return nil
	}

	fmt.Printf("\n  Budget: %s\n  Spent:  %s\n", cli.FormatAmount(status.Limit), cli.FormatAmount(status.Spent))
	if status.Exceeded {
		fmt.Println(cli.Warning(fmt.Sprintf("over budget by %s", cli.FormatAmount(status.OverBy))))
	} else {
		fmt.Println(cli.OK(fmt.Sprintf("%s remaining", cli.FormatAmount(status.Limit-status.Spent))))
	}
	return nil
}
