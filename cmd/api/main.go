package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/api/router"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/appointments"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/availability"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/booking"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/config"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/doctors"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/notify"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/observability/metrics"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/patients"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/transcribe"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/triage"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/pkg/logging"
)

func main() {
	// Load configuration
	_ = godotenv.Load()
	cfg := config.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting appointment assistant API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Seeded read-only repositories
	registry := doctors.NewSeededRegistry()
	ledger := appointments.NewSeededLedger()
	directory := patients.NewSeededDirectory()

	bookingMetrics := metrics.NewBookingMetrics(nil)

	// Core availability engine
	resolver := availability.NewResolver(ledger)
	availabilityService := availability.NewService(registry, resolver, bookingMetrics, logger)

	// Email sender (stub when SendGrid is not configured)
	var emailSender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		emailSender = sg
	} else {
		logger.Warn("sendgrid not configured, confirmation emails will be logged only")
		emailSender = notify.NewStubEmailSender(logger)
	}

	bookingService := booking.NewService(registry, resolver, emailSender, cfg.ClinicNotifyEmail, bookingMetrics, logger)

	// Router configuration, collaborator handlers are wired only when configured
	routerCfg := &router.Config{
		Logger:              logger,
		AvailabilityHandler: availability.NewHandler(availabilityService, logger),
		DoctorsHandler:      doctors.NewHandler(registry, logger),
		PatientsHandler:     patients.NewHandler(directory, logger),
		BookingHandler:      booking.NewHandler(bookingService, logger),
		MetricsHandler:      promhttp.Handler(),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
	}

	if cfg.GeminiAPIKey != "" {
		gemini, err := triage.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		classifier := triage.NewClassifier(gemini, int32(cfg.TriageMaxTokens))
		routerCfg.TriageHandler = triage.NewHandler(classifier, bookingMetrics, logger)
	} else {
		logger.Warn("gemini not configured, symptom analysis disabled")
	}

	if cfg.OpenAIAPIKey != "" {
		transcriber, err := transcribe.New(transcribe.Config{
			BaseURL:  cfg.OpenAIBaseURL,
			APIKey:   cfg.OpenAIAPIKey,
			Model:    cfg.TranscribeModel,
			Language: cfg.TranscribeLang,
		})
		if err != nil {
			logger.Error("failed to create transcription client", "error", err)
			os.Exit(1)
		}
		routerCfg.TranscribeHandler = transcribe.NewHandler(transcriber, bookingMetrics, logger)
	} else {
		logger.Warn("openai not configured, audio transcription disabled")
	}

	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
