package expense

import (
	"fmt"
	"strings"

	"trackexpense/cmd/root"
	"trackexpense/internal/models"

	"github.com/spf13/cobra"
)

var statusNotes string

var statusCmd = &cobra.Command{
	Use:   "status <id> <submitted|approved|rejected>",
	Short: "Change the review status of an expense",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		status := models.Status(strings.ToLower(args[1]))
		if err := c.GetStore().UpdateStatus(root.Context(cmd), args[0], status, statusNotes); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Expense %s is now %s\n", args[0], status)
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVarP(&statusNotes, "notes", "n", "", "Reviewer notes")
}
