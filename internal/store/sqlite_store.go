package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"trackexpense/internal/logging"
	"trackexpense/internal/models"
	"trackexpense/internal/reporterror"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

const expenseColumns = `id, subject_id, subject_name, merchant, date, subtotal, tax, total,
	category, status, notes, distance, image_url, created_at`

// SQLiteStore keeps records in a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	logger logging.Logger
	now    func() time.Time
}

// NewSQLiteStore opens the database at dbPath and migrates it.
func NewSQLiteStore(ctx context.Context, dbPath string, logger logging.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	fail := func(op string, err error) error {
		return &reporterror.StoreError{Backend: string(BackendSQLite), Op: op, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), models.PermissionDirectory); err != nil {
		return nil, fail("open", fmt.Errorf("create db directory: %w", err))
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fail("open", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fail("open", fmt.Errorf("ping database: %w", err))
	}
	if err := RunMigrations(dbPath); err != nil {
		_ = db.Close()
		return nil, fail("migrate", err)
	}

	logger.Debug("SQLite store opened", logging.F(logging.FieldInputFile, dbPath))
	return &SQLiteStore{db: db, logger: logger, now: time.Now}, nil
}

func (s *SQLiteStore) fail(op string, err error) error {
	return &reporterror.StoreError{Backend: string(BackendSQLite), Op: op, Err: err}
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// List returns every record, newest submission first.
func (s *SQLiteStore) List(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY seq DESC`)
	if err != nil {
		return nil, s.fail("list", err)
	}
	out, err := scanExpenses(rows)
	if err != nil {
		return nil, s.fail("list", err)
	}
	return out, nil
}

// ListBySubject returns one subject's records, newest submission first.
func (s *SQLiteStore) ListBySubject(ctx context.Context, subjectID string) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE subject_id = ? ORDER BY seq DESC`, subjectID)
	if err != nil {
		return nil, s.fail("list by subject", err)
	}
	out, err := scanExpenses(rows)
	if err != nil {
		return nil, s.fail("list by subject", err)
	}
	return out, nil
}

// Add inserts e.
func (s *SQLiteStore) Add(ctx context.Context, e models.Expense) (models.Expense, error) {
	e, err := prepareNew(e, s.now())
	if err != nil {
		return models.Expense{}, s.fail("add", err)
	}
	if e.SubjectName == "" {
		if subj, err := s.Subject(ctx, e.SubjectID); err == nil {
			e.SubjectName = subj.Name
		}
	}

	var distance decimal.NullDecimal
	if e.Distance != nil {
		distance = decimal.NullDecimal{Decimal: *e.Distance, Valid: true}
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO expenses (`+expenseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.SubjectID, e.SubjectName, e.Merchant, e.Date.String(),
		e.Subtotal, e.Tax, e.Total, string(e.Category), string(e.Status), e.Notes,
		distance, e.ImageURL, e.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return models.Expense{}, s.fail("add", err)
	}

	s.logger.Info("Expense stored",
		logging.F(logging.FieldBackend, string(BackendSQLite)),
		logging.F(logging.FieldSubject, e.SubjectID),
		logging.F(logging.FieldRowID, e.ID))
	return e, nil
}

// UpdateStatus changes the status and notes of the record with id.
func (s *SQLiteStore) UpdateStatus(ctx context.Context, id string, status models.Status, notes string) error {
	if !status.Valid() {
		return s.fail("update status", models.ErrInvalidStatus)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE expenses SET status = ?, notes = ? WHERE id = ?`, string(status), notes, id)
	if err != nil {
		return s.fail("update status", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return s.fail("update status", err)
	}
	if n == 0 {
		return s.fail("update status", fmt.Errorf("expense %s: %w", id, reporterror.ErrNotFound))
	}
	return nil
}

// Subjects returns all subjects ordered by id.
func (s *SQLiteStore) Subjects(ctx context.Context) ([]models.Subject, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM subjects ORDER BY id`)
	if err != nil {
		return nil, s.fail("subjects", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Subject
	for rows.Next() {
		var subj models.Subject
		if err := rows.Scan(&subj.ID, &subj.Name); err != nil {
			return nil, s.fail("subjects", err)
		}
		out = append(out, subj)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("subjects", err)
	}
	return out, nil
}

// Subject looks up one subject.
func (s *SQLiteStore) Subject(ctx context.Context, id string) (models.Subject, error) {
	subj := models.Subject{ID: id}
	err := s.db.QueryRowContext(ctx, `SELECT name FROM subjects WHERE id = ?`, id).Scan(&subj.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Subject{}, s.fail("subject", fmt.Errorf("subject %s: %w", id, reporterror.ErrNotFound))
	}
	if err != nil {
		return models.Subject{}, s.fail("subject", err)
	}
	return subj, nil
}

// AddSubject inserts or renames a subject.
func (s *SQLiteStore) AddSubject(ctx context.Context, subj models.Subject) error {
	if subj.ID == "" {
		return s.fail("add subject", models.ErrEmptySubject)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO subjects (id, name) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		subj.ID, subj.Name)
	if err != nil {
		return s.fail("add subject", err)
	}
	return nil
}

func scanExpenses(rows *sql.Rows) ([]models.Expense, error) {
	defer func() { _ = rows.Close() }()

	var out []models.Expense
	for rows.Next() {
		var (
			e         models.Expense
			date      string
			category  string
			status    string
			distance  decimal.NullDecimal
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.SubjectID, &e.SubjectName, &e.Merchant, &date,
			&e.Subtotal, &e.Tax, &e.Total, &category, &status, &e.Notes,
			&distance, &e.ImageURL, &createdAt); err != nil {
			return nil, err
		}

		d, err := models.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("expense %s: %w", e.ID, err)
		}
		e.Date = d
		e.Category = models.Category(category)
		e.Status = models.Status(status)
		if distance.Valid {
			v := distance.Decimal
			e.Distance = &v
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("expense %s: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
