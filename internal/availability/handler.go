package availability

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/doctors"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/pkg/logging"
)

// Handler exposes the availability query over HTTP.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new availability handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// GetAvailabilityResponse is the response body for the availability query.
type GetAvailabilityResponse struct {
	Availability []DoctorAvailability `json:"availability"`
}

// Get handles GET /api/availability?especialidad=X&fecha=YYYY-MM-DD requests.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	specialty := strings.TrimSpace(r.URL.Query().Get("especialidad"))
	dateStr := strings.TrimSpace(r.URL.Query().Get("fecha"))
	if specialty == "" || dateStr == "" {
		http.Error(w, `{"error": "especialidad y fecha son requeridas"}`, http.StatusBadRequest)
		return
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		http.Error(w, `{"error": "fecha inválida, se espera YYYY-MM-DD"}`, http.StatusBadRequest)
		return
	}

	ranked := h.service.ForSpecialty(r.Context(), doctors.Specialty(specialty), date)
	if ranked == nil {
		ranked = []DoctorAvailability{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(GetAvailabilityResponse{Availability: ranked}); err != nil {
		h.logger.Error("failed to encode availability response", "error", err)
	}
}
