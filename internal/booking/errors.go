package booking

import "errors"

var (
	// ErrMissingPatient is returned when the patient name or email is missing
	ErrMissingPatient = errors.New("patient name and email are required")

	// ErrMissingDoctor is returned when no doctor identifier is given
	ErrMissingDoctor = errors.New("doctor id is required")

	// ErrInvalidDate is returned when the date is missing or malformed
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

	// ErrInvalidTime is returned when the time is missing or malformed
	ErrInvalidTime = errors.New("time must be HH:MM")

	// ErrDoctorNotFound is returned when the doctor id is not in the registry
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrSlotUnavailable is returned when the requested slot is not open
	ErrSlotUnavailable = errors.New("requested slot is not available")
)
