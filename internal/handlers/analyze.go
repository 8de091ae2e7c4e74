package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/spacesedan/intentai/internal/analysis"
	"github.com/spacesedan/intentai/internal/models"
)

const (
	msgTextRequired    = "text required"
	msgAnalysisFailed  = "analysis failed"
	msgInvalidBody     = "invalid request body"
	msgPayloadTooLarge = "payload too large"
)

type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResponse, error)
}

type AnalyzeHandler struct {
	service Analyzer
}

func NewAnalyzeHandler(service Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{service: service}
}

// Analyze serves POST /analyze. Validation failures are 400; every other failure
// is logged with its cause and collapsed into a 500.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	var payload models.AnalysisPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, msgPayloadTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	analysisReq, err := payload.Request()
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	// The orchestration outlives a disconnecting caller; request-scoped values stay.
	ctx := context.WithoutCancel(r.Context())

	resp, err := h.service.Analyze(ctx, analysisReq)
	if err != nil {
		kind := analysis.KindOf(err)
		if kind == analysis.KindValidation {
			writeError(w, http.StatusBadRequest, msgTextRequired)
			return
		}

		slog.Error("[AnalyzeHandler] Analysis failed",
			slog.String("kind", kind.String()),
			slog.String("request_id", RequestIDFrom(r.Context())),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgAnalysisFailed)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
