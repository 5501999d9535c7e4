package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"outlay/internal/cli"
	"outlay/internal/store"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println(cli.Errorf("id %q: must be a number", args[0]))
		return nil
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.DeleteExpense(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fmt.Println(cli.Errorf("no expense with id %d", id))
			return nil
		}
		return err
	}

	if !flagQuiet {
		fmt.Println(cli.OK(fmt.Sprintf("Deleted expense #%d", id)))
	}
	return nil
}
