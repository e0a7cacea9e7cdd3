package receipt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"trackexpense/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-1.5-flash"

const analysisPrompt = `Analyze this receipt image. Extract the merchant name, date (YYYY-MM-DD format), subtotal, tax, total, and suggest a category (Restaurant, Hotel, Transport, Supplies, Miscellaneous). If a value is not found, return 0 or empty string.

Respond with a single JSON object and nothing else, using exactly these keys:
{"merchant": string, "date": string, "subtotal": number, "tax": number, "total": number, "category": string}`

// GeminiAnalyzer reads receipts with a Gemini vision model.
type GeminiAnalyzer struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	logger  logging.Logger
}

// NewGeminiAnalyzer creates an analyzer using apiKey. An empty model selects
// DefaultModel; a zero timeout means none.
func NewGeminiAnalyzer(ctx context.Context, apiKey, model string, timeout time.Duration, logger logging.Logger) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable not set")
	}
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = logging.Nop()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiAnalyzer{
		client:  client,
		model:   client.GenerativeModel(model),
		timeout: timeout,
		logger:  logger.WithField(logging.FieldModel, model),
	}, nil
}

// Close releases the client.
func (g *GeminiAnalyzer) Close() error {
	return g.client.Close()
}

// Analyze sends the image with the extraction prompt and decodes the reply.
func (g *GeminiAnalyzer) Analyze(ctx context.Context, image []byte, mimeType string) (Analysis, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	format := strings.TrimPrefix(mimeType, "image/")
	if format == "" || strings.Contains(format, "/") {
		format = "jpeg"
	}

	g.logger.Debug("Analyzing receipt", logging.F(logging.FieldFormat, format))
	resp, err := g.model.GenerateContent(ctx, genai.ImageData(format, image), genai.Text(analysisPrompt))
	if err != nil {
		return Analysis{}, fmt.Errorf("Gemini API error: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return Analysis{}, ErrEmptyResponse
	}
	result, err := ParseResponse(text)
	if err != nil {
		return Analysis{}, err
	}

	g.logger.Info("Receipt analyzed", logging.F("merchant", result.Merchant))
	return result, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
