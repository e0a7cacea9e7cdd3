package report

import (
	"fmt"

	"trackexpense/internal/dateutils"
	"trackexpense/internal/logging"
	"trackexpense/internal/models"
)

// Session is one interactive report view: a filter, the expense collection it
// selects from and the grid seeded from both.
type Session struct {
	filter    Filter
	filterSet bool
	expenses  []models.Expense
	projector *Projector
	grid      *Grid
	assembler *Assembler
	logger    logging.Logger
}

// NewSession wires a session from its parts. A nil logger discards output.
func NewSession(projector *Projector, grid *Grid, assembler *Assembler, logger logging.Logger) *Session {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Session{
		projector: projector,
		grid:      grid,
		assembler: assembler,
		logger:    logger,
	}
}

// Filter returns the current filter.
func (s *Session) Filter() Filter {
	return s.filter
}

// Grid exposes the live grid for edits.
func (s *Session) Grid() *Grid {
	return s.grid
}

// SetFilter validates f and reseeds the grid when f differs from the current
// filter in any field. A rate or card label change reseeds too and drops edits.
func (s *Session) SetFilter(f Filter) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("invalid report filter: %w", err)
	}
	if s.filterSet && s.filter.Equal(f) {
		return nil
	}
	s.filter = f
	s.filterSet = true
	s.Refresh()
	return nil
}

// SetExpenses replaces the expense collection and reseeds.
func (s *Session) SetExpenses(expenses []models.Expense) {
	s.expenses = expenses
	s.Refresh()
}

// Refresh reseeds the grid from the expense collection under the current
// filter, discarding all edits.
func (s *Session) Refresh() {
	if !s.filterSet {
		return
	}
	selected := Select(s.expenses, s.filter)
	s.grid.Reseed(s.projector.ProjectAll(selected))
	s.logger.WithFields(
		logging.F(logging.FieldSubject, s.filter.SubjectID),
		logging.F(logging.FieldPeriod, s.filter.Period()),
	).Debug("Report reseeded", logging.F(logging.FieldCount, len(selected)))
}

// DefaultDate is the date given to inserted rows: the first of the period.
func (s *Session) DefaultDate() string {
	return dateutils.PeriodDefaultDate(s.filter.Month, s.filter.Year)
}

// InsertRow appends a blank manual row dated the first of the period.
func (s *Session) InsertRow() Row {
	return s.grid.InsertRow(s.DefaultDate())
}

// Totals recomputes the aggregates of the current grid.
func (s *Session) Totals() Totals {
	return Compute(s.grid.Rows(), s.filter.MileageRate)
}

// Document assembles the ledger for the current grid.
func (s *Session) Document(subjectName string) Document {
	rows := s.grid.Rows()
	meta := Metadata{
		SubjectName: subjectName,
		Month:       s.filter.Month,
		Year:        s.filter.Year,
		MileageRate: s.filter.MileageRate,
		CardLabel:   s.filter.CardLabel,
	}
	return s.assembler.Assemble(meta, rows, Compute(rows, s.filter.MileageRate))
}
