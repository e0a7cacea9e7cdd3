package reporterror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexOutOfRangeError(t *testing.T) {
	err := &IndexOutOfRangeError{Index: 5, Len: 3}

	assert.Equal(t, "row index 5 out of range [0,3)", err.Error())
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.False(t, errors.Is(err, ErrUnknownField))

	wrapped := fmt.Errorf("edit cell: %w", err)
	assert.ErrorIs(t, wrapped, ErrIndexOutOfRange)

	var target *IndexOutOfRangeError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, 5, target.Index)
}

func TestUnknownFieldError(t *testing.T) {
	err := &UnknownFieldError{Field: "tips"}

	assert.Equal(t, "unknown field 'tips'", err.Error())
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.NotErrorIs(t, err, ErrIndexOutOfRange)
}

func TestStoreError(t *testing.T) {
	inner := errors.New("disk full")
	err := &StoreError{Backend: "yaml", Op: "save", Err: inner}

	assert.Equal(t, "yaml store: save: disk full", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestExportError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ExportError
		expected string
	}{
		{
			name:     "with path",
			err:      &ExportError{Format: "xlsx", Path: "/tmp/r.xlsx", Err: errors.New("denied")},
			expected: "export xlsx to '/tmp/r.xlsx': denied",
		},
		{
			name:     "stream without path",
			err:      &ExportError{Format: "csv", Err: errors.New("closed pipe")},
			expected: "export csv: closed pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.NotNil(t, errors.Unwrap(tt.err))
		})
	}
}
