// Package cmd implements the outlay CLI commands.
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"outlay/internal/budget"
	"outlay/internal/cli"
	"outlay/internal/config"
	"outlay/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDB    string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "outlay",
	Short: "Personal expense tracker",
	Long:  "Track expenses, summarize spending by week or month, and watch a monthly budget.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Path to the expense database (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress confirmation output")
}

// openStore resolves the database path (flag > config > default) and
// opens it. Callers must Close.
func openStore() (*store.Store, error) {
	path := flagDB
	if path == "" {
		cfg, _ := config.Load()
		path = config.DBPath(cfg)
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("storage unavailable: %w", err)
	}
	return s, nil
}

// prompt reads one line of input with a label, trimming whitespace.
func prompt(reader *bufio.Reader, label string) string {
	fmt.Printf("  %s: ", label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// printBudgetWarning checks the month containing ref and prints a
// warning line when the configured budget is exceeded.
func printBudgetWarning(ev *budget.Evaluator, ref time.Time) {
	status, err := ev.Check(ref)
	if err != nil {
		fmt.Println(cli.Errorf("budget check failed: %v", err))
		return
	}
	if status.Exceeded {
		fmt.Println(cli.Warning(fmt.Sprintf(
			"monthly spend %s exceeds budget %s by %s",
			cli.FormatAmount(status.Spent),
			cli.FormatAmount(status.Limit),
			cli.FormatAmount(status.OverBy),
		)))
	}
}
