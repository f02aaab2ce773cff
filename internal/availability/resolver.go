package availability

import (
	"context"
	"time"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/appointments"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/doctors"
)

// DateLayout is the calendar-date wire format used throughout the wizard.
const DateLayout = "2006-01-02"

// TimeSlot is one candidate appointment slot for a doctor on a date.
// Derived, never stored.
type TimeSlot struct {
	Time      string `json:"time"` // HH:MM
	Available bool   `json:"available"`
	DoctorID  string `json:"doctorId"`
}

// DoctorAvailability aggregates a doctor's slots for a single date.
type DoctorAvailability struct {
	Doctor         doctors.Doctor `json:"doctor"`
	Slots          []TimeSlot     `json:"slots"`
	TotalSlots     int            `json:"totalSlots"`
	AvailableSlots int            `json:"availableSlots"`
}

// Resolver computes per-doctor availability against the appointment ledger.
type Resolver struct {
	ledger appointments.Ledger
}

// NewResolver constructs a resolver over the given ledger.
func NewResolver(ledger appointments.Ledger) *Resolver {
	if ledger == nil {
		panic("availability: ledger required")
	}
	return &Resolver{ledger: ledger}
}

// Resolve computes the availability of one doctor on one date. A date on
// which the doctor does not work yields zero slots; that is a terminal
// outcome, not an error. Slots are returned in generation order.
func (r *Resolver) Resolve(ctx context.Context, doctor doctors.Doctor, date time.Time) DoctorAvailability {
	out := DoctorAvailability{Doctor: doctor, Slots: []TimeSlot{}}

	if !doctor.WorksOn(date.Weekday()) {
		return out
	}

	times := GenerateSlots(doctor.WorkStart, doctor.WorkEnd, doctor.SlotMinutes)
	booked := r.ledger.ForDoctorOnDate(ctx, doctor.ID, date.Format(DateLayout))

	for _, t := range times {
		slot := TimeSlot{
			Time:      t,
			Available: slotIsFree(t, doctor.SlotMinutes, booked),
			DoctorID:  doctor.ID,
		}
		out.Slots = append(out.Slots, slot)
		if slot.Available {
			out.AvailableSlots++
		}
	}
	out.TotalSlots = len(out.Slots)
	return out
}

// slotIsFree tests the slot interval [t, t+minutes) against every confirmed
// appointment interval for the same doctor and date.
func slotIsFree(t string, minutes int, booked []appointments.Appointment) bool {
	slotStart, err := parseClock(t)
	if err != nil {
		return false
	}
	slotEnd := slotStart + minutes

	for _, apt := range booked {
		aptStart, err := parseClock(apt.StartTime)
		if err != nil {
			continue
		}
		if overlaps(slotStart, slotEnd, aptStart, aptStart+apt.Minutes) {
			return false
		}
	}
	return true
}
