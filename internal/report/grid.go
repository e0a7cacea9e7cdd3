package report

import (
	"trackexpense/internal/logging"
	"trackexpense/internal/models"
	"trackexpense/internal/reporterror"

	"github.com/google/uuid"
)

// Grid holds the live rows of a report and applies edits to them. A Grid has a
// single owner and is not safe for concurrent use.
type Grid struct {
	rows   []Row
	ids    IDGenerator
	logger logging.Logger
}

// NewGrid creates an empty grid. Nil arguments get a session generator and a
// discarding logger.
func NewGrid(ids IDGenerator, logger logging.Logger) *Grid {
	if ids == nil {
		ids = NewSessionIDGenerator()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Grid{ids: ids, logger: logger}
}

// Reseed replaces every row in one step. Edits made since the previous seed,
// manual rows included, are discarded.
func (g *Grid) Reseed(rows []Row) {
	next := make([]Row, len(rows))
	copy(next, rows)
	g.rows = next
	g.logger.Debug("Grid reseeded", logging.F(logging.FieldCount, len(next)))
}

// Rows returns a copy of the current rows in display order.
func (g *Grid) Rows() []Row {
	out := make([]Row, len(g.rows))
	copy(out, g.rows)
	return out
}

// Len returns the number of rows.
func (g *Grid) Len() int {
	return len(g.rows)
}

// Row returns the row at index.
func (g *Grid) Row(index int) (Row, error) {
	if index < 0 || index >= len(g.rows) {
		return Row{}, &reporterror.IndexOutOfRangeError{Index: index, Len: len(g.rows)}
	}
	return g.rows[index], nil
}

// EditCell writes raw into one cell. Text fields store raw unchanged. Numeric
// fields read raw leniently and store zero when it holds no number. Any
// monetary edit recomputes the row total; a distance edit leaves it alone.
func (g *Grid) EditCell(index int, fieldName string, raw string) error {
	if index < 0 || index >= len(g.rows) {
		return &reporterror.IndexOutOfRangeError{Index: index, Len: len(g.rows)}
	}
	field, err := ParseField(fieldName)
	if err != nil {
		return err
	}

	row := g.rows[index]
	switch field {
	case FieldDate:
		row.Date = raw
	case FieldDestination:
		row.Destination = raw
	default:
		value, exact := models.ParseLenientAmount(raw)
		if !exact {
			g.logger.Debug("Malformed numeric input normalized",
				logging.F(logging.FieldRowIndex, index),
				logging.F(logging.FieldField, string(field)),
				logging.F(logging.FieldValue, raw))
		}
		if field == FieldDistance {
			row.Distance = value
		} else {
			*row.cell(fieldColumns[field]) = value
			row.RecomputeTotal()
		}
	}
	g.rows[index] = row
	return nil
}

// InsertRow appends a blank manual row dated defaultDate and returns it.
func (g *Grid) InsertRow(defaultDate string) Row {
	row := Row{
		ID:     g.freshID(),
		Date:   defaultDate,
		Manual: true,
	}
	g.rows = append(g.rows, row)
	g.logger.Debug("Manual row inserted", logging.F(logging.FieldRowID, row.ID))
	return row
}

// DeleteRow removes the row with the given id. Unknown ids are ignored so that a
// removal racing a reseed is harmless; the return value tells whether a row went.
func (g *Grid) DeleteRow(id string) bool {
	for i := range g.rows {
		if g.rows[i].ID == id {
			g.rows = append(g.rows[:i:i], g.rows[i+1:]...)
			g.logger.Debug("Row deleted", logging.F(logging.FieldRowID, id))
			return true
		}
	}
	return false
}

// maxIDAttempts bounds how often a colliding generator is asked again before
// falling back to a random identifier.
const maxIDAttempts = 64

func (g *Grid) freshID() string {
	for i := 0; i < maxIDAttempts; i++ {
		id := g.ids.NextID()
		if !g.hasID(id) {
			return id
		}
	}
	for {
		id := "manual-" + uuid.NewString()
		if !g.hasID(id) {
			g.logger.Warn("Row id generator kept colliding, using random id",
				logging.F(logging.FieldRowID, id))
			return id
		}
	}
}

func (g *Grid) hasID(id string) bool {
	for _, r := range g.rows {
		if r.ID == id {
			return true
		}
	}
	return false
}
