package expense

import (
	"fmt"

	"trackexpense/cmd/root"
	"trackexpense/internal/store"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import expenses from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		n, err := store.ImportCSV(root.Context(cmd), c.GetStore(), args[0], c.GetConfig().Delimiter(), c.GetLogger())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d expenses\n", n)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample subjects and expenses",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		ds, err := store.SampleData()
		if err != nil {
			return err
		}
		if err := store.Seed(root.Context(cmd), c.GetStore(), ds); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d subjects and %d expenses\n", len(ds.Subjects), len(ds.Expenses))
		return nil
	},
}
