// Package booking completes the appointment wizard: it re-checks that the
// chosen slot is still open and emails a confirmation summary. There is no
// write path: the appointment ledger is read-only seed data, so a completed
// wizard produces a reference number and an email, never a ledger row.
package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/availability"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/doctors"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/notify"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/observability/metrics"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/pkg/logging"
)

// ConfirmRequest is the wizard's final-step payload.
type ConfirmRequest struct {
	DoctorID     string `json:"doctorId"`
	Date         string `json:"fecha"` // YYYY-MM-DD
	Time         string `json:"hora"`  // HH:MM
	PatientName  string `json:"pacienteNombre"`
	PatientEmail string `json:"pacienteEmail"`
}

// Validate checks the request shape. Slot availability is checked separately.
func (r *ConfirmRequest) Validate() error {
	if strings.TrimSpace(r.DoctorID) == "" {
		return ErrMissingDoctor
	}
	if strings.TrimSpace(r.PatientName) == "" || strings.TrimSpace(r.PatientEmail) == "" {
		return ErrMissingPatient
	}
	if _, err := time.Parse(availability.DateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	if _, err := time.Parse("15:04", r.Time); err != nil {
		return ErrInvalidTime
	}
	return nil
}

// Confirmation is the outcome of a completed wizard.
type Confirmation struct {
	Reference string `json:"reference"`
	Doctor    string `json:"doctor"`
	Specialty string `json:"especialidad"`
	Date      string `json:"fecha"`
	Time      string `json:"hora"`
	EmailSent bool   `json:"emailSent"`
}

// Service completes bookings.
type Service struct {
	registry    doctors.Registry
	resolver    *availability.Resolver
	email       notify.EmailSender
	clinicEmail string
	metrics     *metrics.BookingMetrics
	logger      *logging.Logger
}

// NewService constructs a booking service. clinicEmail is optional; when set,
// the clinic receives a copy of every confirmation.
func NewService(registry doctors.Registry, resolver *availability.Resolver, email notify.EmailSender, clinicEmail string, m *metrics.BookingMetrics, logger *logging.Logger) *Service {
	if registry == nil {
		panic("booking: registry required")
	}
	if resolver == nil {
		panic("booking: resolver required")
	}
	if email == nil {
		email = notify.NewStubEmailSender(logger)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		registry:    registry,
		resolver:    resolver,
		email:       email,
		clinicEmail: clinicEmail,
		metrics:     m,
		logger:      logger,
	}
}

// Confirm validates the chosen slot against current availability and sends
// the confirmation email. Two wizards can still claim the same slot; with no
// persistence there is nothing to contend over, the recheck only catches
// slots that were never open.
func (s *Service) Confirm(ctx context.Context, req ConfirmRequest) (*Confirmation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doctor, ok := s.registry.ByID(ctx, req.DoctorID)
	if !ok {
		return nil, ErrDoctorNotFound
	}

	date, _ := time.Parse(availability.DateLayout, req.Date)
	av := s.resolver.Resolve(ctx, doctor, date)
	if !slotOpen(av, req.Time) {
		return nil, ErrSlotUnavailable
	}

	summary := notify.AppointmentSummary{
		Reference:    "cita-" + uuid.NewString()[:8],
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		DoctorName:   doctor.FullName(),
		Specialty:    doctor.Specialty.String(),
		Date:         req.Date,
		Time:         req.Time,
		Minutes:      doctor.SlotMinutes,
	}

	emailSent := s.sendConfirmation(ctx, summary)

	s.logger.Info("booking confirmed",
		"reference", summary.Reference,
		"doctor_id", doctor.ID,
		"date", req.Date,
		"time", req.Time,
		"email_sent", emailSent,
	)

	return &Confirmation{
		Reference: summary.Reference,
		Doctor:    summary.DoctorName,
		Specialty: summary.Specialty,
		Date:      req.Date,
		Time:      req.Time,
		EmailSent: emailSent,
	}, nil
}

// sendConfirmation delivers the summary to the patient and, when configured,
// a copy to the clinic. Email failure does not fail the confirmation; the
// wizard already completed and there is no state to roll back.
func (s *Service) sendConfirmation(ctx context.Context, summary notify.AppointmentSummary) bool {
	msg := notify.EmailMessage{
		To:      summary.PatientEmail,
		ToName:  summary.PatientName,
		Subject: notify.ConfirmationSubject(summary),
		Body:    notify.ConfirmationBody(summary),
	}
	if err := s.email.Send(ctx, msg); err != nil {
		s.metrics.ObserveEmail("error")
		s.logger.Error("confirmation email failed", "error", err, "reference", summary.Reference)
		return false
	}
	s.metrics.ObserveEmail("sent")

	if s.clinicEmail != "" {
		clinicMsg := msg
		clinicMsg.To = s.clinicEmail
		clinicMsg.ToName = ""
		if err := s.email.Send(ctx, clinicMsg); err != nil {
			s.metrics.ObserveEmail("error")
			s.logger.Error("clinic copy email failed", "error", err, "reference", summary.Reference)
		}
	}
	return true
}

func slotOpen(av availability.DoctorAvailability, hhmm string) bool {
	for _, slot := range av.Slots {
		if slot.Time == hhmm {
			return slot.Available
		}
	}
	return false
}
