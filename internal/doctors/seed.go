package doctors

import "time"

var weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

var weekdaysPlusSaturday = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}

// SeedDoctors returns the clinic's practitioner catalog. Order matters: the
// availability ranker preserves it as the tie-break among doctors with the
// same number of open slots.
func SeedDoctors() []Doctor {
	return []Doctor{
		{ID: "doc001", FirstName: "Dr. Carlos", LastName: "Rodríguez", Specialty: SpecialtyMedicinaGeneral, YearsExperience: 15, WorkStart: "08:00", WorkEnd: "16:00", WorkDays: weekdays, SlotMinutes: 60},
		{ID: "doc002", FirstName: "Dra. María", LastName: "González", Specialty: SpecialtyNeumologia, YearsExperience: 12, WorkStart: "13:00", WorkEnd: "17:00", WorkDays: weekdays, SlotMinutes: 60},
		{ID: "doc003", FirstName: "Dr. Roberto", LastName: "Martínez", Specialty: SpecialtyCardiologia, YearsExperience: 20, WorkStart: "08:00", WorkEnd: "14:00", WorkDays: weekdays, SlotMinutes: 45},
		{ID: "doc004", FirstName: "Dra. Ana", LastName: "López", Specialty: SpecialtyCardiologia, YearsExperience: 18, WorkStart: "14:00", WorkEnd: "18:00", WorkDays: weekdays, SlotMinutes: 45},
		{ID: "doc005", FirstName: "Dr. Luis", LastName: "Fernández", Specialty: SpecialtyDermatologia, YearsExperience: 10, WorkStart: "09:00", WorkEnd: "15:00", WorkDays: weekdays, SlotMinutes: 30},
		{ID: "doc006", FirstName: "Dra. Carmen", LastName: "Ruiz", Specialty: SpecialtyNeumologia, YearsExperience: 14, WorkStart: "15:00", WorkEnd: "19:00", WorkDays: weekdaysPlusSaturday, SlotMinutes: 30},
		{ID: "doc007", FirstName: "Dr. Miguel", LastName: "Torres", Specialty: SpecialtyGastro, YearsExperience: 16, WorkStart: "08:00", WorkEnd: "14:00", WorkDays: weekdays, SlotMinutes: 40},
		{ID: "doc008", FirstName: "Dra. Patricia", LastName: "Morales", Specialty: SpecialtyGinecologia, YearsExperience: 13, WorkStart: "08:00", WorkEnd: "16:00", WorkDays: weekdaysPlusSaturday, SlotMinutes: 35},
		{ID: "doc009", FirstName: "Dra. Isabel", LastName: "Vargas", Specialty: SpecialtyGinecologia, YearsExperience: 19, WorkStart: "14:00", WorkEnd: "18:00", WorkDays: weekdays, SlotMinutes: 35},
		{ID: "doc010", FirstName: "Dr. Fernando", LastName: "Castro", Specialty: SpecialtyNeurologia, YearsExperience: 22, WorkStart: "09:00", WorkEnd: "15:00", WorkDays: weekdays, SlotMinutes: 50},
		{ID: "doc011", FirstName: "Dr. Andrés", LastName: "Herrera", Specialty: SpecialtyOftalmologia, YearsExperience: 11, WorkStart: "08:00", WorkEnd: "16:00", WorkDays: weekdaysPlusSaturday, SlotMinutes: 25},
		{ID: "doc012", FirstName: "Dra. Lucía", LastName: "Jiménez", Specialty: SpecialtyOftalmologia, YearsExperience: 9, WorkStart: "14:00", WorkEnd: "18:00", WorkDays: weekdays, SlotMinutes: 25},
		{ID: "doc013", FirstName: "Dr. Ricardo", LastName: "Mendoza", Specialty: SpecialtyOrtopedia, YearsExperience: 17, WorkStart: "08:00", WorkEnd: "14:00", WorkDays: weekdays, SlotMinutes: 40},
		{ID: "doc014", FirstName: "Dr. Javier", LastName: "Peña", Specialty: SpecialtyOrtopedia, YearsExperience: 14, WorkStart: "15:00", WorkEnd: "19:00", WorkDays: weekdaysPlusSaturday, SlotMinutes: 40},
		{ID: "doc015", FirstName: "Dra. Elena", LastName: "Ramírez", Specialty: SpecialtyPediatria, YearsExperience: 16, WorkStart: "08:00", WorkEnd: "16:00", WorkDays: weekdaysPlusSaturday, SlotMinutes: 30},
		{ID: "doc016", FirstName: "Dr. Pablo", LastName: "Silva", Specialty: SpecialtyPediatria, YearsExperience: 12, WorkStart: "14:00", WorkEnd: "18:00", WorkDays: weekdays, SlotMinutes: 30},
		{ID: "doc017", FirstName: "Dr. Sergio", LastName: "Ortega", Specialty: SpecialtyPsiquiatria, YearsExperience: 18, WorkStart: "09:00", WorkEnd: "17:00", WorkDays: weekdays, SlotMinutes: 60},
		{ID: "doc018", FirstName: "Dr. Alejandro", LastName: "Vega", Specialty: SpecialtyUrologia, YearsExperience: 15, WorkStart: "08:00", WorkEnd: "14:00", WorkDays: weekdays, SlotMinutes: 35},
		{ID: "doc019", FirstName: "Dr. Daniel", LastName: "Campos", Specialty: SpecialtyUrologia, YearsExperience: 13, WorkStart: "15:00", WorkEnd: "19:00", WorkDays: weekdaysPlusSaturday, SlotMinutes: 35},
	}
}
