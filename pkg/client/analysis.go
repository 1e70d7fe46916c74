package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/adapters"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/api"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/domain"
)

const defaultTimeout = 60 * time.Second

// AnalysisService is the CLI-side client for the analysis web service.
type AnalysisService interface {
	Analyze(ctx context.Context, a domain.CodeAnalysis) (*domain.AnalysisReport, error)
}

type analysisClient struct {
	baseURL string
	http    *http.Client
}

// NewAnalysisService creates a client for the service at baseURL
// (e.g. http://localhost:8000).
func NewAnalysisService(baseURL string) AnalysisService {
	return &analysisClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

func (c *analysisClient) Analyze(ctx context.Context, a domain.CodeAnalysis) (*domain.AnalysisReport, error) {
	payload, err := json.Marshal(adapters.MapDomainAnalysisToRequest(a))
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis request: %w", err)
	}

	url := c.baseURL + "/api/v1/analyze"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach analysis service at %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("analysis service returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var report api.AnalysisReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}

	return adapters.MapAPIReportToDomain(&report), nil
}
