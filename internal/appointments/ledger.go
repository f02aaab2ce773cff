package appointments

import "context"

// Ledger defines read-only access to existing bookings.
type Ledger interface {
	// ForDoctorOnDate returns the confirmed appointments for a doctor on a
	// calendar date (YYYY-MM-DD). Cancelled and completed bookings never
	// block a slot, so they are filtered out here. Absence is an empty slice.
	ForDoctorOnDate(ctx context.Context, doctorID, date string) []Appointment
}

// InMemoryLedger is a Ledger over a fixed, immutable slice of appointments.
type InMemoryLedger struct {
	appointments []Appointment
}

// NewInMemoryLedger creates a ledger over the given bookings.
func NewInMemoryLedger(appts []Appointment) *InMemoryLedger {
	return &InMemoryLedger{appointments: appts}
}

// NewSeededLedger creates a ledger over the default seed bookings.
func NewSeededLedger() *InMemoryLedger {
	return NewInMemoryLedger(SeedAppointments())
}

// ForDoctorOnDate returns confirmed appointments for (doctorID, date).
func (l *InMemoryLedger) ForDoctorOnDate(ctx context.Context, doctorID, date string) []Appointment {
	var out []Appointment
	for _, apt := range l.appointments {
		if apt.DoctorID == doctorID && apt.Date == date && apt.Status == StatusConfirmed {
			out = append(out, apt)
		}
	}
	return out
}
