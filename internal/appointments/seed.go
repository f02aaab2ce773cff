package appointments

// SeedAppointments returns the bookings already on file. Two confirmed
// appointments for the same doctor never overlap; the resolver assumes
// this rather than enforcing it.
func SeedAppointments() []Appointment {
	return []Appointment{
		{ID: "apt001", DoctorID: "doc001", Date: "2024-01-27", StartTime: "09:00", Minutes: 30, PatientName: "Juan Pérez", Status: StatusConfirmed},
		{ID: "apt002", DoctorID: "doc001", Date: "2024-01-27", StartTime: "09:30", Minutes: 30, PatientName: "María García", Status: StatusConfirmed},
		{ID: "apt003", DoctorID: "doc002", Date: "2025-07-30", StartTime: "15:00", Minutes: 60, PatientName: "Pedro López", Status: StatusConfirmed},
		{ID: "apt004", DoctorID: "doc003", Date: "2024-01-27", StartTime: "08:00", Minutes: 45, PatientName: "Ana Martínez", Status: StatusConfirmed},
		{ID: "apt005", DoctorID: "doc003", Date: "2024-01-27", StartTime: "09:30", Minutes: 45, PatientName: "Carlos Ruiz", Status: StatusConfirmed},
		{ID: "apt006", DoctorID: "doc005", Date: "2024-01-28", StartTime: "10:00", Minutes: 30, PatientName: "Laura Torres", Status: StatusConfirmed},
		{ID: "apt007", DoctorID: "doc008", Date: "2024-01-29", StartTime: "14:00", Minutes: 35, PatientName: "Sofia Mendoza", Status: StatusConfirmed},
	}
}
