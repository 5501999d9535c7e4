package cmd

import (
	"bufio"
	"fmt"
	"os"

	"outlay/internal/cli"
	"outlay/internal/export"
	"outlay/internal/model"
	"outlay/internal/period"

	"github.com/spf13/cobra"
)

var (
	flagExportFrom string
	flagExportTo   string
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export all expenses to a CSV file",
	Long:  "Write every recorded expense to a CSV snapshot, overwriting the destination file.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFrom, "from", "", "Only expenses on or after this date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&flagExportTo, "to", "", "Only expenses on or before this date (YYYY-MM-DD)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		reader := bufio.NewReader(os.Stdin)
		path = prompt(reader, "Destination file (e.g. expenses.csv)")
	}
	if path == "" {
		fmt.Println(cli.Errorf("a destination path is required"))
		return nil
	}

	var filter model.Filter
	var err error
	if flagExportFrom != "" {
		filter.From, err = period.ParseDate(flagExportFrom)
		if err != nil {
			fmt.Println(cli.Errorf("--from: %v", err))
			return nil
		}
	}
	if flagExportTo != "" {
		filter.To, err = period.ParseDate(flagExportTo)
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

	count, err := export.WriteFile(s, path, filter)
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Println(cli.OK(fmt.Sprintf("Exported %d records to %s", count, path)))
	}
	return nil
}
