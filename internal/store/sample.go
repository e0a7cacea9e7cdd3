package store

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

// SampleData returns the demonstration dataset.
func SampleData() (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(sampleYAML, &ds); err != nil {
		return nil, fmt.Errorf("error parsing sample data: %w", err)
	}
	return &ds, nil
}

// Seed loads ds into s. Records are added last to first so that List returns
// them in dataset order.
func Seed(ctx context.Context, s Store, ds *Dataset) error {
	for _, subj := range ds.Subjects {
		if err := s.AddSubject(ctx, subj); err != nil {
			return err
		}
	}
	for i := len(ds.Expenses) - 1; i >= 0; i-- {
		if _, err := s.Add(ctx, ds.Expenses[i]); err != nil {
			return fmt.Errorf("seed expense %s: %w", ds.Expenses[i].ID, err)
		}
	}
	return nil
}
