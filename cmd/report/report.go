// Package report implements the command that compiles a monthly expense report.
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"trackexpense/cmd/root"
	"trackexpense/internal/container"
	"trackexpense/internal/export"
	"trackexpense/internal/i18n"
	"trackexpense/internal/logging"
	"trackexpense/internal/report"
	"trackexpense/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// StdoutPath makes the report go to standard output instead of a file.
const StdoutPath = "-"

// Options are the inputs of one report run.
type Options struct {
	Subject string
	Month   int // 1-12
	Year    int
	Rate    string
	Card    string
	Lang    string
	Format  string
	Output  string
	Edits   string
}

var opts Options

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Compile the monthly expense report of a subject",
	Long: `Compile the expense report of a subject for one month. Records are projected
into the ledger columns, optionally edited with a YAML edit script, totalled and
exported as XLSX, CSV or a text preview.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		path, err := Run(root.Context(cmd), c, opts, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if path != StdoutPath {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		}
		return nil
	},
}

func init() {
	now := time.Now()
	Cmd.Flags().StringVarP(&opts.Subject, "subject", "s", "", "Subject id to report on")
	Cmd.Flags().IntVarP(&opts.Month, "month", "m", int(now.Month()), "Report month (1-12)")
	Cmd.Flags().IntVarP(&opts.Year, "year", "y", now.Year(), "Report year")
	Cmd.Flags().StringVar(&opts.Rate, "rate", "", "Mileage rate in EUR per km (default from config)")
	Cmd.Flags().StringVar(&opts.Card, "card", "", "Card label of the footer (default from config)")
	Cmd.Flags().StringVarP(&opts.Lang, "lang", "l", "", "Report language: "+joinNames(i18n.Languages())+" (default from config)")
	Cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: "+joinNames(export.Formats())+" (default from config)")
	Cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file, or - for standard output")
	Cmd.Flags().StringVarP(&opts.Edits, "edits", "e", "", "YAML edit script applied to the grid before export")
	_ = Cmd.MarkFlagRequired("subject")
}

// Run compiles the report described by o and returns the path written, or
// StdoutPath when the document went to out.
func Run(ctx context.Context, c *container.Container, o Options, out io.Writer) (string, error) {
	cfg := c.GetConfig()
	logger := c.GetLogger()

	filter, err := buildFilter(o, cfg.MileageRate(), cfg.Report.CardLabel)
	if err != nil {
		return "", err
	}
	locale, err := c.Locale(o.Lang)
	if err != nil {
		return "", err
	}
	writer, err := c.Writer(o.Format, locale)
	if err != nil {
		return "", err
	}

	expenses, err := c.GetStore().List(ctx)
	if err != nil {
		return "", err
	}

	session := c.NewSession(locale)
	session.SetExpenses(expenses)
	if err := session.SetFilter(filter); err != nil {
		return "", err
	}

	if o.Edits != "" {
		if err := applyEdits(o.Edits, session); err != nil {
			return "", err
		}
	}

	subjectName := store.SubjectName(ctx, c.GetStore(), filter.SubjectID)
	doc := session.Document(subjectName)
	logger.Info("Report compiled",
		logging.F(logging.FieldSubject, filter.SubjectID),
		logging.F(logging.FieldPeriod, filter.Period()),
		logging.F(logging.FieldCount, session.Grid().Len()))

	if o.Output == StdoutPath {
		return StdoutPath, writer.Write(out, doc)
	}

	path := o.Output
	if path == "" {
		name := report.FileName(subjectName, locale.MonthName(filter.Month), filter.Year, writer.Extension())
		path = filepath.Join(cfg.Export.Directory, name)
	}
	if err := export.WriteFile(writer, doc, path, logger); err != nil {
		return "", err
	}
	return path, nil
}

func joinNames[T ~string](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

func buildFilter(o Options, defaultRate decimal.Decimal, defaultCard string) (report.Filter, error) {
	if o.Month < 1 || o.Month > 12 {
		return report.Filter{}, fmt.Errorf("month must be between 1 and 12, got: %d", o.Month)
	}
	rate := defaultRate
	if strings.TrimSpace(o.Rate) != "" {
		parsed, err := decimal.NewFromString(strings.TrimSpace(o.Rate))
		if err != nil {
			return report.Filter{}, fmt.Errorf("invalid mileage rate '%s': %w", o.Rate, err)
		}
		rate = parsed
	}
	card := defaultCard
	if o.Card != "" {
		card = o.Card
	}
	return report.Filter{
		SubjectID:   o.Subject,
		Month:       o.Month - 1,
		Year:        o.Year,
		MileageRate: rate,
		CardLabel:   card,
	}, nil
}

func applyEdits(path string, session *report.Session) error {
	f, err := os.Open(path) // #nosec G304 -- edit script path is provided by the user
	if err != nil {
		return fmt.Errorf("failed to open edit script: %w", err)
	}
	defer f.Close()

	script, err := report.LoadEditScript(f)
	if err != nil {
		return fmt.Errorf("failed to parse edit script %s: %w", path, err)
	}
	return script.Apply(session)
}
