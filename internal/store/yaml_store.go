package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"trackexpense/internal/logging"
	"trackexpense/internal/models"
	"trackexpense/internal/reporterror"

	"gopkg.in/yaml.v3"
)

// Dataset is the document persisted by the YAML backend.
type Dataset struct {
	Subjects []models.Subject `yaml:"subjects"`
	Expenses []models.Expense `yaml:"expenses"`
}

// YAMLStore keeps the whole dataset in one YAML file. Every call reads the file
// and every write rewrites it, so several processes see each other's changes.
type YAMLStore struct {
	path   string
	logger logging.Logger
	mu     sync.Mutex
	now    func() time.Time
}

// NewYAMLStore creates a store backed by path. The file is created on first write.
func NewYAMLStore(path string, logger logging.Logger) *YAMLStore {
	if logger == nil {
		logger = logging.Nop()
	}
	return &YAMLStore{path: path, logger: logger, now: time.Now}
}

func (s *YAMLStore) fail(op string, err error) error {
	return &reporterror.StoreError{Backend: string(BackendYAML), Op: op, Err: err}
}

func (s *YAMLStore) load() (*Dataset, error) {
	data, err := os.ReadFile(s.path) // #nosec G304 -- store path comes from configuration
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("Store file not found, starting empty", logging.F(logging.FieldInputFile, s.path))
		return &Dataset{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading store file: %w", err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("error parsing store file: %w", err)
	}
	return &ds, nil
}

func (s *YAMLStore) save(ds *Dataset) error {
	if err := os.MkdirAll(filepath.Dir(s.path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating store directory: %w", err)
	}
	data, err := yaml.Marshal(ds)
	if err != nil {
		return fmt.Errorf("error encoding store: %w", err)
	}
	if err := os.WriteFile(s.path, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing store file: %w", err)
	}
	return nil
}

// List returns every record in file order, which is newest first.
func (s *YAMLStore) List(_ context.Context) ([]models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := s.load()
	if err != nil {
		return nil, s.fail("list", err)
	}
	return ds.Expenses, nil
}

// ListBySubject returns one subject's records.
func (s *YAMLStore) ListBySubject(ctx context.Context, subjectID string) ([]models.Expense, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterBySubject(all, subjectID), nil
}

// Add prepends e to the file.
func (s *YAMLStore) Add(_ context.Context, e models.Expense) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := prepareNew(e, s.now())
	if err != nil {
		return models.Expense{}, s.fail("add", err)
	}
	ds, err := s.load()
	if err != nil {
		return models.Expense{}, s.fail("add", err)
	}
	for _, existing := range ds.Expenses {
		if existing.ID == e.ID {
			return models.Expense{}, s.fail("add", fmt.Errorf("expense %s already exists", e.ID))
		}
	}
	if e.SubjectName == "" {
		for _, subj := range ds.Subjects {
			if subj.ID == e.SubjectID {
				e.SubjectName = subj.Name
			}
		}
	}
	ds.Expenses = append([]models.Expense{e}, ds.Expenses...)
	if err := s.save(ds); err != nil {
		return models.Expense{}, s.fail("add", err)
	}

	s.logger.Info("Expense stored",
		logging.F(logging.FieldBackend, string(BackendYAML)),
		logging.F(logging.FieldSubject, e.SubjectID),
		logging.F(logging.FieldRowID, e.ID))
	return e, nil
}

// UpdateStatus rewrites the status and notes of the record with id.
func (s *YAMLStore) UpdateStatus(_ context.Context, id string, status models.Status, notes string) error {
	if !status.Valid() {
		return s.fail("update status", models.ErrInvalidStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := s.load()
	if err != nil {
		return s.fail("update status", err)
	}
	for i := range ds.Expenses {
		if ds.Expenses[i].ID == id {
			ds.Expenses[i].Status = status
			ds.Expenses[i].Notes = notes
			if err := s.save(ds); err != nil {
				return s.fail("update status", err)
			}
			return nil
		}
	}
	return s.fail("update status", fmt.Errorf("expense %s: %w", id, reporterror.ErrNotFound))
}

// Subjects returns the subject directory.
func (s *YAMLStore) Subjects(_ context.Context) ([]models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := s.load()
	if err != nil {
		return nil, s.fail("subjects", err)
	}
	return ds.Subjects, nil
}

// Subject looks up one subject.
func (s *YAMLStore) Subject(ctx context.Context, id string) (models.Subject, error) {
	subjects, err := s.Subjects(ctx)
	if err != nil {
		return models.Subject{}, err
	}
	for _, subj := range subjects {
		if subj.ID == id {
			return subj, nil
		}
	}
	return models.Subject{}, s.fail("subject", fmt.Errorf("subject %s: %w", id, reporterror.ErrNotFound))
}

// AddSubject inserts or renames a subject.
func (s *YAMLStore) AddSubject(_ context.Context, subj models.Subject) error {
	if subj.ID == "" {
		return s.fail("add subject", models.ErrEmptySubject)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := s.load()
	if err != nil {
		return s.fail("add subject", err)
	}
	replaced := false
	for i := range ds.Subjects {
		if ds.Subjects[i].ID == subj.ID {
			ds.Subjects[i] = subj
			replaced = true
		}
	}
	if !replaced {
		ds.Subjects = append(ds.Subjects, subj)
	}
	if err := s.save(ds); err != nil {
		return s.fail("add subject", err)
	}
	return nil
}

// Close is a no-op; the file is not held open.
func (s *YAMLStore) Close() error { return nil }
