package patients

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/pkg/logging"
)

// Handler handles HTTP requests for patient lookup
type Handler struct {
	directory Directory
	logger    *logging.Logger
}

// NewHandler creates a new patients handler
func NewHandler(directory Directory, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// SearchResponse is the response for a patient lookup.
type SearchResponse struct {
	Found   bool     `json:"found"`
	Patient *Patient `json:"patient"`
}

// Search handles GET /api/patients/search?cedula=N requests.
// A missing record is a found:false response, never an error status.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	idNumber := strings.TrimSpace(r.URL.Query().Get("cedula"))
	if idNumber == "" {
		http.Error(w, `{"error": "cedula es requerida"}`, http.StatusBadRequest)
		return
	}

	resp := SearchResponse{}
	if p, ok := h.directory.FindByID(r.Context(), idNumber); ok {
		resp.Found = true
		resp.Patient = &p
	}

	h.logger.Info("patient lookup", "cedula", idNumber, "found", resp.Found)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode patient response", "error", err)
	}
}
