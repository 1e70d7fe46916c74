package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/api"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/domain"
)

func TestAnalyze(t *testing.T) {
	var gotPath string
	var gotReq api.CodeAnalysisRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(api.AnalysisReport{
			RequestID:         gotReq.RequestID,
			OverallAssessment: "Looks reasonable.",
			CodeBlockSuggestions: []api.CodeBlockSuggestion{
				{BlockID: "Cell 1", InefficiencySummary: "collect()"},
			},
			CommonInefficiencies: []string{},
		})
	}))
	defer srv.Close()

	svc := NewAnalysisService(srv.URL)
	report, err := svc.Analyze(context.Background(), domain.CodeAnalysis{
		RequestID: "req-9",
		Language:  "python_spark",
		Code:      "df.collect()",
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/analyze", gotPath)
	assert.Equal(t, "req-9", gotReq.RequestID)
	assert.Equal(t, "df.collect()", gotReq.CodeContent)
	assert.Equal(t, "Looks reasonable.", report.OverallAssessment)
	require.Len(t, report.CodeBlockSuggestions, 1)
	assert.Equal(t, "Cell 1", report.CodeBlockSuggestions[0].BlockID)
}

func TestAnalyze_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "code content cannot be empty", http.StatusBadRequest)
	}))
	defer srv.Close()

	svc := NewAnalysisService(srv.URL)
	_, err := svc.Analyze(context.Background(), domain.CodeAnalysis{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "code content cannot be empty")
}

func TestAnalyze_ConnectionRefused(t *testing.T) {
	svc := NewAnalysisService("http://127.0.0.1:1")
	_, err := svc.Analyze(context.Background(), domain.CodeAnalysis{Code: "x"})
	assert.Error(t, err)
}
