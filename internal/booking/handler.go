package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/pkg/logging"
)

// Handler exposes wizard completion over HTTP.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new booking handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Confirm handles POST /api/bookings/confirm requests.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	confirmation, err := h.service.Confirm(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDoctorNotFound):
			http.Error(w, `{"error": "médico no encontrado"}`, http.StatusNotFound)
		case errors.Is(err, ErrSlotUnavailable):
			http.Error(w, `{"error": "el horario seleccionado ya no está disponible"}`, http.StatusConflict)
		default:
			http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(confirmation); err != nil {
		h.logger.Error("failed to encode confirmation response", "error", err)
	}
}
