// Package store persists expense records and the subjects they belong to.
// Two backends implement the same interface: a YAML file and a SQLite database.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trackexpense/internal/logging"
	"trackexpense/internal/models"
	"trackexpense/internal/reporterror"

	"github.com/google/uuid"
)

// UnknownSubject is the display name of a subject missing from the directory.
const UnknownSubject = "Unknown"

// Backend names a storage implementation.
type Backend string

// Supported backends
const (
	BackendYAML   Backend = "yaml"
	BackendSQLite Backend = "sqlite"
)

// ExpenseStore reads and writes expense records.
type ExpenseStore interface {
	// List returns every record, newest submission first.
	List(ctx context.Context) ([]models.Expense, error)
	// ListBySubject returns the records of one subject, newest submission first.
	ListBySubject(ctx context.Context, subjectID string) ([]models.Expense, error)
	// Add stores a new record and returns it with its generated fields set.
	Add(ctx context.Context, e models.Expense) (models.Expense, error)
	// UpdateStatus changes the status and notes of a record.
	UpdateStatus(ctx context.Context, id string, status models.Status, notes string) error
}

// SubjectDirectory resolves subjects.
type SubjectDirectory interface {
	Subjects(ctx context.Context) ([]models.Subject, error)
	Subject(ctx context.Context, id string) (models.Subject, error)
	AddSubject(ctx context.Context, s models.Subject) error
}

// Store is a complete backend.
type Store interface {
	ExpenseStore
	SubjectDirectory
	Close() error
}

// Open returns the backend named by backend rooted at path.
func Open(ctx context.Context, backend Backend, path string, logger logging.Logger) (Store, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	switch Backend(strings.ToLower(string(backend))) {
	case BackendYAML:
		return NewYAMLStore(path, logger), nil
	case BackendSQLite:
		return NewSQLiteStore(ctx, path, logger)
	default:
		return nil, fmt.Errorf("%w: %s", reporterror.ErrUnknownBackend, backend)
	}
}

// SubjectName returns the display name of a subject, or UnknownSubject when it
// cannot be resolved.
func SubjectName(ctx context.Context, dir SubjectDirectory, id string) string {
	s, err := dir.Subject(ctx, id)
	if err != nil || s.Name == "" {
		return UnknownSubject
	}
	return s.Name
}

func newExpenseID() string {
	return uuid.NewString()
}

// prepareNew fills the fields a new submission gets from the store and
// validates the result.
func prepareNew(e models.Expense, now time.Time) (models.Expense, error) {
	if e.ID == "" {
		e.ID = newExpenseID()
	}
	if e.Status == "" {
		e.Status = models.StatusSubmitted
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now.UTC()
	}
	e.Category = models.ParseCategory(string(e.Category))
	if err := e.Validate(); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

func filterBySubject(expenses []models.Expense, subjectID string) []models.Expense {
	var out []models.Expense
	for _, e := range expenses {
		if e.SubjectID == subjectID {
			out = append(out, e)
		}
	}
	return out
}
