package analysis

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/adapters"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/api"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/services/analysis"
)

type Handler struct {
	analyzer analysis.Analyzer
}

func NewHandler(analyzer analysis.Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.CodeAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("failed to decode analysis request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.CodeContent == "" {
		http.Error(w, "code content cannot be empty", http.StatusBadRequest)
		return
	}

	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	logger.Info().Str("request_id", req.RequestID).
		Str("language", req.CodeLanguage).
		Msg("received analysis request")

	report, err := h.analyzer.Analyze(ctx, adapters.MapRequestToDomainAnalysis(&req))
	if err != nil {
		logger.Error().Err(err).
			Str("request_id", req.RequestID).
			Msg("analysis failed")
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapDomainReportToAPI(report)); err != nil {
		logger.Error().Err(err).
			Str("request_id", req.RequestID).
			Msg("failed to encode analysis report")
	}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
