package handlers

import (
	"net/http"

	"github.com/spacesedan/intentai/internal/models"
)

type StatusReporter interface {
	Status() string
}

type HealthHandler struct {
	classifier StatusReporter
}

func NewHealthHandler(classifier StatusReporter) *HealthHandler {
	return &HealthHandler{classifier: classifier}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := "unknown"
	if h.classifier != nil {
		status = h.classifier.Status()
	}
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok", Classifier: status})
}
