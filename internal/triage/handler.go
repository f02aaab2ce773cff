package triage

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/observability/metrics"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/pkg/logging"
)

// Handler exposes symptom analysis over HTTP.
type Handler struct {
	classifier *Classifier
	metrics    *metrics.BookingMetrics
	logger     *logging.Logger
}

// NewHandler creates a new triage handler.
func NewHandler(classifier *Classifier, m *metrics.BookingMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{classifier: classifier, metrics: m, logger: logger}
}

// AnalyzeRequest is the request body for symptom analysis.
type AnalyzeRequest struct {
	Symptoms string `json:"symptoms"`
}

// Analyze handles POST /api/triage/analyze requests.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	analysis, err := h.classifier.Analyze(r.Context(), req.Symptoms)
	if err != nil {
		if errors.Is(err, ErrEmptySymptoms) {
			http.Error(w, `{"error": "los síntomas son requeridos"}`, http.StatusBadRequest)
			return
		}
		h.metrics.ObserveTriage("", "error")
		h.logger.Error("symptom analysis failed", "error", err)
		http.Error(w, `{"error": "error al analizar los síntomas, intente de nuevo"}`, http.StatusBadGateway)
		return
	}

	h.metrics.ObserveTriage(analysis.Specialty.String(), "ok")
	h.logger.Info("symptoms classified", "specialty", analysis.Specialty.String(), "confidence", analysis.Confidence)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(analysis); err != nil {
		h.logger.Error("failed to encode analysis response", "error", err)
	}
}
