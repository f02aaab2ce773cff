package doctors

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/pkg/logging"
)

// Handler handles HTTP requests for the practitioner catalog
type Handler struct {
	registry Registry
	logger   *logging.Logger
}

// NewHandler creates a new doctors handler
func NewHandler(registry Registry, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{registry: registry, logger: logger}
}

// ListResponse is the response for listing doctors.
type ListResponse struct {
	Doctors []Doctor `json:"doctors"`
	Count   int      `json:"count"`
}

// List handles GET /api/doctors?especialidad=X requests.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	specialty := strings.TrimSpace(r.URL.Query().Get("especialidad"))
	if specialty == "" {
		http.Error(w, `{"error": "especialidad es requerida"}`, http.StatusBadRequest)
		return
	}

	docs := h.registry.BySpecialty(r.Context(), Specialty(specialty))
	if docs == nil {
		docs = []Doctor{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ListResponse{Doctors: docs, Count: len(docs)}); err != nil {
		h.logger.Error("failed to encode doctors response", "error", err)
	}
}
