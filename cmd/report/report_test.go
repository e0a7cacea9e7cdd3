package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"trackexpense/internal/config"
	"trackexpense/internal/container"
	"trackexpense/internal/logging"
	"trackexpense/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T) *container.Container {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Log:    config.LogConfig{Level: "info", Format: "text"},
		Report: config.ReportConfig{MileageRate: "0.427", CardLabel: "CMO Valves", Language: "en"},
		Export: config.ExportConfig{Format: "csv", Directory: dir, CSVDelimiter: ";"},
		Store:  config.StoreConfig{Backend: "yaml", Path: filepath.Join(dir, "expenses.yaml")},
		AI:     config.AIConfig{Model: "gemini-1.5-flash", TimeoutSeconds: 30},
	}
	c, err := container.NewContainer(context.Background(), cfg, container.WithLogger(logging.Nop()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ds, err := store.SampleData()
	require.NoError(t, err)
	require.NoError(t, store.Seed(context.Background(), c.GetStore(), ds))
	return c
}

func TestReportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "report", Cmd.Use)
	assert.Contains(t, Cmd.Short, "monthly expense report")
	assert.NotNil(t, Cmd.RunE)

	for name, shorthand := range map[string]string{
		"subject": "s", "month": "m", "year": "y", "lang": "l",
		"format": "f", "output": "o", "edits": "e",
	} {
		flag := Cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, shorthand, flag.Shorthand, name)
	}
	assert.NotNil(t, Cmd.Flags().Lookup("rate"))
	assert.NotNil(t, Cmd.Flags().Lookup("card"))
	assert.Contains(t, Cmd.Flags().Lookup("format").Usage, "xlsx, csv, text")
	assert.Contains(t, Cmd.Flags().Lookup("lang").Usage, "en, es, fr")
}

func TestBuildFilter(t *testing.T) {
	defaultRate := decimal.RequireFromString("0.427")

	tests := []struct {
		name        string
		opts        Options
		wantMonth   int
		wantRate    string
		wantCard    string
		expectError bool
	}{
		{"defaults", Options{Subject: "u4", Month: 4, Year: 2025}, 3, "0.427", "CMO Valves", false},
		{"overrides", Options{Subject: "u4", Month: 12, Year: 2025, Rate: " 0.19 ", Card: "Visa"}, 11, "0.19", "Visa", false},
		{"month zero", Options{Subject: "u4", Month: 0, Year: 2025}, 0, "", "", true},
		{"month thirteen", Options{Subject: "u4", Month: 13, Year: 2025}, 0, "", "", true},
		{"bad rate", Options{Subject: "u4", Month: 4, Year: 2025, Rate: "abc"}, 0, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := buildFilter(tt.opts, defaultRate, "CMO Valves")
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMonth, f.Month)
			assert.Equal(t, tt.wantRate, f.MileageRate.String())
			assert.Equal(t, tt.wantCard, f.CardLabel)
		})
	}
}

func TestRun_Stdout(t *testing.T) {
	c := newTestContainer(t)
	var out bytes.Buffer

	path, err := Run(context.Background(), c, Options{Subject: "u4", Month: 4, Year: 2025, Output: StdoutPath}, &out)
	require.NoError(t, err)
	assert.Equal(t, StdoutPath, path)
	assert.Contains(t, out.String(), "ARITZ FERNANDEZ CORTES")
	assert.Contains(t, out.String(), "TOTALS;;;;;11.59;241.03;1217.3;0;1469.92")
}

func TestRun_WithEdits(t *testing.T) {
	c := newTestContainer(t)
	script := filepath.Join(t.TempDir(), "edits.yaml")
	require.NoError(t, os.WriteFile(script, []byte("- op: delete\n  id: r7\n"), 0600))

	var out bytes.Buffer
	_, err := Run(context.Background(), c, Options{Subject: "u4", Month: 4, Year: 2025, Output: StdoutPath, Edits: script}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "TOTALS;;;;;11.59;241.03;3.45;0;256.07")
	assert.NotContains(t, out.String(), "VUELOS CANADA KLM")
}

func TestRun_WritesFile(t *testing.T) {
	c := newTestContainer(t)

	path, err := Run(context.Background(), c, Options{Subject: "u4", Month: 4, Year: 2025, Format: "xlsx"}, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(c.GetConfig().Export.Directory, "Expense_Report_Aritz_Fernandez_Cortes_April_2025.xlsx"), path)
	assert.FileExists(t, path)
}

func TestRun_Errors(t *testing.T) {
	c := newTestContainer(t)
	var out bytes.Buffer

	_, err := Run(context.Background(), c, Options{Subject: "", Month: 4, Year: 2025, Output: StdoutPath}, &out)
	assert.ErrorContains(t, err, "subject id is required")

	_, err = Run(context.Background(), c, Options{Subject: "u4", Month: 4, Year: 2025, Format: "pdf"}, &out)
	assert.Error(t, err)

	_, err = Run(context.Background(), c, Options{Subject: "u4", Month: 4, Year: 2025, Lang: "de"}, &out)
	assert.Error(t, err)

	_, err = Run(context.Background(), c, Options{Subject: "u4", Month: 4, Year: 2025, Output: StdoutPath, Edits: "missing.yaml"}, &out)
	assert.ErrorContains(t, err, "failed to open edit script")
}
