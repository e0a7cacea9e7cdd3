package expense

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"trackexpense/cmd/root"
	"trackexpense/internal/models"
	"trackexpense/internal/store"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	listSubject string
	listYAML    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored expenses, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return List(root.Context(cmd), c.GetStore(), listSubject, listYAML, cmd.OutOrStdout())
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSubject, "subject", "s", "", "Only list the expenses of this subject id")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Print records as YAML")
}

// List prints the stored expenses, optionally limited to one subject.
func List(ctx context.Context, s store.ExpenseStore, subjectID string, asYAML bool, out io.Writer) error {
	var (
		expenses []models.Expense
		err      error
	)
	if subjectID != "" {
		expenses, err = s.ListBySubject(ctx, subjectID)
	} else {
		expenses, err = s.List(ctx)
	}
	if err != nil {
		return err
	}

	if asYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(expenses); err != nil {
			return fmt.Errorf("failed to encode expenses: %w", err)
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tSUBJECT\tMERCHANT\tCATEGORY\tTOTAL\tSTATUS")
	for _, e := range expenses {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Date, e.SubjectName, e.Merchant, e.Category, e.Total.StringFixed(2), e.Status)
	}
	return tw.Flush()
}
