package availability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/doctors"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/observability/metrics"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/pkg/logging"
)

// Service answers specialty-level availability queries.
type Service struct {
	registry doctors.Registry
	resolver *Resolver
	metrics  *metrics.BookingMetrics
	logger   *logging.Logger
	tracer   trace.Tracer
}

// NewService constructs an availability service.
func NewService(registry doctors.Registry, resolver *Resolver, m *metrics.BookingMetrics, logger *logging.Logger) *Service {
	if registry == nil {
		panic("availability: registry required")
	}
	if resolver == nil {
		panic("availability: resolver required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		registry: registry,
		resolver: resolver,
		metrics:  m,
		logger:   logger,
		tracer:   otel.Tracer("clinic.internal.availability"),
	}
}

// ForSpecialty returns ranked availability for every doctor of a specialty on
// a date. A specialty with no registered doctors yields an empty list.
func (s *Service) ForSpecialty(ctx context.Context, specialty doctors.Specialty, date time.Time) []DoctorAvailability {
	ctx, span := s.tracer.Start(ctx, "availability.for_specialty")
	defer span.End()
	span.SetAttributes(
		attribute.String("clinic.specialty", specialty.String()),
		attribute.String("clinic.date", date.Format(DateLayout)),
	)

	start := time.Now()
	docs := s.registry.BySpecialty(ctx, specialty)
	ranked := s.resolver.Rank(ctx, docs, date)

	outcome := "ok"
	if len(ranked) == 0 {
		outcome = "empty"
	}
	s.metrics.ObserveAvailabilityQuery(specialty.String(), outcome, time.Since(start).Seconds())
	s.logger.Info("availability resolved",
		"specialty", specialty.String(),
		"date", date.Format(DateLayout),
		"doctors", len(docs),
		"with_open_slots", len(ranked),
	)
	return ranked
}
