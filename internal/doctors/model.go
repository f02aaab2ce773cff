package doctors

import "time"

// Doctor is one practitioner in the clinic catalog. Records are immutable:
// they are seeded once at process start and never mutated afterwards.
type Doctor struct {
	ID              string         `json:"id"`
	FirstName       string         `json:"nombre"`
	LastName        string         `json:"apellido"`
	Specialty       Specialty      `json:"especialidad"`
	YearsExperience int            `json:"experiencia"`
	WorkStart       string         `json:"horarioInicio"` // HH:MM
	WorkEnd         string         `json:"horarioFin"`    // HH:MM
	WorkDays        []time.Weekday `json:"diasTrabajo"`   // 0=Sunday
	SlotMinutes     int            `json:"duracionCita"`
}

// WorksOn reports whether the doctor works on the given weekday.
func (d Doctor) WorksOn(day time.Weekday) bool {
	for _, wd := range d.WorkDays {
		if wd == day {
			return true
		}
	}
	return false
}

// FullName returns the display name for confirmations and summaries.
func (d Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
