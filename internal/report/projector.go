package report

import (
	"time"

	"trackexpense/internal/models"
)

// DateFormatter renders a record date for display in the grid.
type DateFormatter func(time.Time) string

// Projector builds report rows from expense records.
type Projector struct {
	formatDate DateFormatter
}

// NewProjector creates a Projector. A nil formatter renders dates as YYYY-MM-DD.
func NewProjector(formatDate DateFormatter) *Projector {
	if formatDate == nil {
		formatDate = func(t time.Time) string { return t.Format(models.DateLayout) }
	}
	return &Projector{formatDate: formatDate}
}

// Project places the record total in the single column its category funds.
// Distance is carried only for mileage records. Total is the record total even
// when the category funds no column.
func (p *Projector) Project(e models.Expense) Row {
	row := Row{
		ID:          e.ID,
		Date:        p.formatDate(e.Date.Time),
		Destination: e.Merchant,
		Total:       e.Total,
	}
	if e.Category == models.CategoryMileage {
		row.Distance = e.DistanceOrZero()
	}
	if cell := row.cell(BucketFor(e.Category)); cell != nil {
		*cell = e.Total
	}
	return row
}

// ProjectAll projects records in order.
func (p *Projector) ProjectAll(expenses []models.Expense) []Row {
	rows := make([]Row, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, p.Project(e))
	}
	return rows
}
