// Package expense implements the commands that record and inspect expenses.
package expense

import (
	"github.com/spf13/cobra"
)

// Cmd represents the expense command
var Cmd = &cobra.Command{
	Use:   "expense",
	Short: "Record and inspect expenses",
	Long: `Record expenses by hand or from a receipt image, import them from CSV,
seed the sample dataset, list them and review their status.`,
}

func init() {
	Cmd.AddCommand(listCmd, addCmd, importCmd, seedCmd, statusCmd)
}
