package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/spacesedan/intentai/internal/models"
)

const msgPredictionFailed = "prediction failed"

type Scorer interface {
	Score(text string) (models.PredictResponse, error)
}

// PredictHandler serves the local classifier's /predict endpoint.
type PredictHandler struct {
	scorer    Scorer
	validator *validator.Validate
}

func NewPredictHandler(scorer Scorer) *PredictHandler {
	return &PredictHandler{scorer: scorer, validator: validator.New()}
}

func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	var payload models.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, msgPayloadTooLarge)
			return
		}
		writeError(w, http.StatusUnprocessableEntity, msgInvalidBody)
		return
	}

	if err := h.validator.Struct(payload); err != nil {
		writeError(w, http.StatusUnprocessableEntity, msgTextRequired)
		return
	}

	scores, err := h.scorer.Score(payload.Text)
	if err != nil {
		slog.Error("[PredictHandler] Scoring failed",
			slog.String("request_id", RequestIDFrom(r.Context())),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgPredictionFailed)
		return
	}

	writeJSON(w, http.StatusOK, scores)
}

func (h *PredictHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
