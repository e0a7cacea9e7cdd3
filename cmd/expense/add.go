package expense

import (
	"context"
	"fmt"
	"os"
	"time"

	"trackexpense/cmd/root"
	"trackexpense/internal/currencyutils"
	"trackexpense/internal/logging"
	"trackexpense/internal/models"
	"trackexpense/internal/receipt"
	"trackexpense/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// AddOptions describe a new record. Empty fields keep the receipt analysis
// values when a receipt is given.
type AddOptions struct {
	Subject  string
	Merchant string
	Date     string
	Subtotal string
	Tax      string
	Total    string
	Category string
	Distance string
	Notes    string
	Receipt  string
}

var addOpts AddOptions

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense, optionally from a receipt image",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		e, err := Add(root.Context(cmd), c.GetStore(), c.GetAnalyzer(), addOpts, time.Now(), c.GetLogger())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added expense %s (%s %s)\n", e.ID, e.Merchant, e.Total.StringFixed(2))
		return nil
	},
}

func init() {
	f := addCmd.Flags()
	f.StringVarP(&addOpts.Subject, "subject", "s", "", "Subject id")
	f.StringVarP(&addOpts.Merchant, "merchant", "m", "", "Merchant or destination")
	f.StringVarP(&addOpts.Date, "date", "d", "", "Expense date (YYYY-MM-DD, default today)")
	f.StringVar(&addOpts.Subtotal, "subtotal", "", "Amount before tax")
	f.StringVar(&addOpts.Tax, "tax", "", "Tax amount")
	f.StringVarP(&addOpts.Total, "total", "t", "", "Total amount")
	f.StringVarP(&addOpts.Category, "category", "c", "", "Category")
	f.StringVar(&addOpts.Distance, "distance", "", "Distance in km for mileage records")
	f.StringVarP(&addOpts.Notes, "notes", "n", "", "Free-form notes")
	f.StringVarP(&addOpts.Receipt, "receipt", "r", "", "Receipt image to analyze")
	_ = addCmd.MarkFlagRequired("subject")
}

// Add builds a record from o, pre-filled from the receipt analysis when a
// receipt is given, and stores it.
func Add(ctx context.Context, s store.ExpenseStore, analyzer receipt.Analyzer, o AddOptions, now time.Time, logger logging.Logger) (models.Expense, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	base := receipt.Fallback(now)
	if o.Receipt != "" {
		data, err := os.ReadFile(o.Receipt) // #nosec G304 -- receipt path is provided by the user
		if err != nil {
			return models.Expense{}, fmt.Errorf("failed to read receipt: %w", err)
		}
		base = receipt.AnalyzeOrDefault(ctx, analyzer, data, receipt.DetectMIMEType(o.Receipt, data), now, logger)
	}

	e := base.Expense(o.Subject, now)
	e.ImageURL = o.Receipt
	e.Notes = o.Notes
	if o.Merchant != "" {
		e.Merchant = o.Merchant
	}
	if o.Category != "" {
		e.Category = models.ParseCategory(o.Category)
	}
	if o.Date != "" {
		date, err := models.ParseDate(o.Date)
		if err != nil {
			return models.Expense{}, err
		}
		e.Date = date
	}

	for _, amount := range []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"subtotal", o.Subtotal, &e.Subtotal},
		{"tax", o.Tax, &e.Tax},
		{"total", o.Total, &e.Total},
	} {
		if amount.raw == "" {
			continue
		}
		d, err := currencyutils.ParseAmount(amount.raw)
		if err != nil {
			return models.Expense{}, fmt.Errorf("invalid %s '%s'", amount.name, amount.raw)
		}
		*amount.dst = d
	}
	if o.Distance != "" {
		d, err := currencyutils.ParseAmount(o.Distance)
		if err != nil {
			return models.Expense{}, fmt.Errorf("invalid distance '%s'", o.Distance)
		}
		e.Distance = &d
	}

	return s.Add(ctx, e)
}
