package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/adapters"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/domain"
)

// Analyzer produces an optimization report for a piece of pipeline code.
type Analyzer interface {
	Analyze(ctx context.Context, a domain.CodeAnalysis) (*domain.AnalysisReport, error)
}

type geminiAnalyzer struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiAnalyzer creates an Analyzer backed by the Gemini API.
func NewGeminiAnalyzer(ctx context.Context, cfg *Config) (Analyzer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured (set %s)", apiKeyEnvVar)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.ResponseMIMEType = "application/json"

	return &geminiAnalyzer{client: client, model: model}, nil
}

func (g *geminiAnalyzer) Analyze(ctx context.Context, a domain.CodeAnalysis) (*domain.AnalysisReport, error) {
	logger := zerolog.Ctx(ctx)

	prompt := buildPrompt(a)
	logger.Debug().
		Str("request_id", a.RequestID).
		Int("prompt_bytes", len(prompt)).
		Msg("sending analysis request to model")

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("received an empty response from the model")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw.WriteString(string(text))
		}
	}

	report := decodeReport(a.RequestID, raw.String())
	logger.Info().
		Str("request_id", report.RequestID).
		Int("suggestions", len(report.CodeBlockSuggestions)).
		Msg("analysis report decoded")

	return report, nil
}

// decodeReport turns raw model output into a typed report. The model is told
// to answer with bare JSON but occasionally wraps it in a code fence anyway;
// a response that does not decode at all yields a degraded report carrying
// the error instead of failing the request.
func decodeReport(requestID, raw string) *domain.AnalysisReport {
	cleaned := stripJSONFence(raw)

	var rawReport map[string]any
	if err := json.Unmarshal([]byte(cleaned), &rawReport); err != nil {
		snippet := cleaned
		if len(snippet) > 500 {
			snippet = snippet[:500]
		}
		return &domain.AnalysisReport{
			RequestID:            requestID,
			OverallAssessment:    fmt.Sprintf("Failed to decode JSON response from the model: %v.", err),
			CommonInefficiencies: []string{fmt.Sprintf("Raw model output snippet: %s", snippet)},
		}
	}

	report := adapters.MapRawReportToDomain(rawReport)
	report.RequestID = requestID
	if report.OverallAssessment == "" {
		report.OverallAssessment = "No overall assessment provided by the model."
	}
	return report
}

func stripJSONFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
