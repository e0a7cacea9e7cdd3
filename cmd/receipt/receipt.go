// Package receipt implements the command that extracts expense fields from a
// receipt image.
package receipt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"trackexpense/cmd/root"
	"trackexpense/internal/logging"
	"trackexpense/internal/receipt"

	"github.com/spf13/cobra"
)

// Cmd represents the receipt command
var Cmd = &cobra.Command{
	Use:   "receipt",
	Short: "Work with receipt images",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Extract merchant, date, amounts and category from a receipt image",
	Long: `Send a receipt image to the configured Gemini model and print the extracted
fields as JSON. When AI is disabled or the analysis fails the default
prefill is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Analyze(root.Context(cmd), c.GetAnalyzer(), args[0], time.Now(), c.GetLogger(), cmd.OutOrStdout())
	},
}

func init() {
	Cmd.AddCommand(analyzeCmd)
}

// Analyze reads the image at path and writes the analysis as indented JSON.
func Analyze(ctx context.Context, a receipt.Analyzer, path string, now time.Time, logger logging.Logger, out io.Writer) error {
	data, err := os.ReadFile(path) // #nosec G304 -- receipt path is provided by the user
	if err != nil {
		return fmt.Errorf("failed to read receipt: %w", err)
	}
	mimeType := receipt.DetectMIMEType(path, data)
	if logger != nil {
		logger.Debug("Analyzing receipt",
			logging.F(logging.FieldInputFile, path),
			logging.F("mime_type", mimeType))
	}

	analysis := receipt.AnalyzeOrDefault(ctx, a, data, mimeType, now, logger)
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(analysis)
}
