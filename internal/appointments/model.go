package appointments

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusConfirmed Status = "confirmada"
	StatusCancelled Status = "cancelada"
	StatusCompleted Status = "completada"
)

// Appointment is one confirmed-or-historic booking in the ledger. Records are
// immutable: the core never creates or updates them, it only filters.
type Appointment struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctorId"`
	Date        string `json:"fecha"` // YYYY-MM-DD
	StartTime   string `json:"hora"`  // HH:MM
	Minutes     int    `json:"duracion"`
	PatientName string `json:"pacienteNombre"`
	Status      Status `json:"estado"`
}
