package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/availability"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/booking"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/doctors"
	httpmiddleware "github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/http/middleware"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/patients"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/transcribe"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/triage"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	AvailabilityHandler *availability.Handler
	DoctorsHandler      *doctors.Handler
	PatientsHandler     *patients.Handler
	TriageHandler       *triage.Handler
	TranscribeHandler   *transcribe.Handler
	BookingHandler      *booking.Handler
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.AvailabilityHandler != nil {
			api.Get("/availability", cfg.AvailabilityHandler.Get)
		}
		if cfg.DoctorsHandler != nil {
			api.Get("/doctors", cfg.DoctorsHandler.List)
		}
		if cfg.PatientsHandler != nil {
			api.Get("/patients/search", cfg.PatientsHandler.Search)
		}
		if cfg.TriageHandler != nil {
			api.Post("/triage/analyze", cfg.TriageHandler.Analyze)
		}
		if cfg.TranscribeHandler != nil {
			api.Post("/transcribe", cfg.TranscribeHandler.Post)
		}
		if cfg.BookingHandler != nil {
			api.Post("/bookings/confirm", cfg.BookingHandler.Confirm)
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status": "ok"}`))
}
