package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Subject is a person whose expenses are reported.
type Subject struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Expense is one submitted expense record.
type Expense struct {
	ID          string           `yaml:"id" json:"id"`
	SubjectID   string           `yaml:"subject_id" json:"subjectId"`
	SubjectName string           `yaml:"subject_name,omitempty" json:"subjectName,omitempty"`
	Merchant    string           `yaml:"merchant" json:"merchant"`
	Date        Date             `yaml:"date" json:"date"`
	Subtotal    decimal.Decimal  `yaml:"subtotal" json:"subtotal"`
	Tax         decimal.Decimal  `yaml:"tax" json:"tax"`
	Total       decimal.Decimal  `yaml:"total" json:"total"`
	Category    Category         `yaml:"category" json:"category"`
	Status      Status           `yaml:"status" json:"status"`
	Notes       string           `yaml:"notes,omitempty" json:"notes,omitempty"`
	Distance    *decimal.Decimal `yaml:"distance,omitempty" json:"distance,omitempty"`
	ImageURL    string           `yaml:"image_url,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   time.Time        `yaml:"created_at" json:"createdAt"`
}

var (
	ErrEmptySubject  = errors.New("empty subject id")
	ErrZeroDate      = errors.New("date cannot be zero")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidStatus = errors.New("invalid status")
)

// Validate checks the fields every stored record must carry.
func (e Expense) Validate() error {
	if strings.TrimSpace(e.SubjectID) == "" {
		return ErrEmptySubject
	}
	if e.Date.IsZero() {
		return ErrZeroDate
	}
	if strings.TrimSpace(string(e.Category)) == "" {
		return ErrEmptyCategory
	}
	if e.Status != "" && !e.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// DistanceOrZero returns the recorded distance, or zero when none was recorded.
func (e Expense) DistanceOrZero() decimal.Decimal {
	if e.Distance == nil {
		return decimal.Zero
	}
	return *e.Distance
}
