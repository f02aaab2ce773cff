package notify

import (
	"fmt"
	"strings"
)

// AppointmentSummary holds everything the confirmation email needs. The
// wizard never persists the booking, so this summary is the only artifact
// the patient and the clinic receive.
type AppointmentSummary struct {
	Reference    string
	PatientName  string
	PatientEmail string
	DoctorName   string
	Specialty    string
	Date         string // YYYY-MM-DD
	Time         string // HH:MM
	Minutes      int
}

// ConfirmationSubject returns the subject line for a confirmation email.
func ConfirmationSubject(s AppointmentSummary) string {
	return fmt.Sprintf("Confirmación de cita - %s %s", s.Date, s.Time)
}

// ConfirmationBody renders the plain-text confirmation email.
func ConfirmationBody(s AppointmentSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Estimado/a %s,\n\n", s.PatientName)
	b.WriteString("Su cita ha sido registrada con los siguientes datos:\n\n")
	fmt.Fprintf(&b, "  Referencia:   %s\n", s.Reference)
	fmt.Fprintf(&b, "  Especialidad: %s\n", s.Specialty)
	fmt.Fprintf(&b, "  Médico:       %s\n", s.DoctorName)
	fmt.Fprintf(&b, "  Fecha:        %s\n", s.Date)
	fmt.Fprintf(&b, "  Hora:         %s (%d minutos)\n\n", s.Time, s.Minutes)
	b.WriteString("Por favor preséntese 15 minutos antes de su cita.\n\n")
	b.WriteString("Atentamente,\nAsistente de Citas")
	return b.String()
}
