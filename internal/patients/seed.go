package patients

// SeedPatients returns the registered patient records.
func SeedPatients() []Patient {
	return []Patient{
		{
			IDNumber:         "12345678",
			FirstName:        "Juan Carlos",
			LastName:         "Pérez González",
			Phone:            "(555) 123-4567",
			Email:            "juan.perez@email.com",
			BirthDate:        "1985-03-15",
			Address:          "Calle Principal 123, Ciudad",
			EmergencyContact: "María Pérez",
			EmergencyPhone:   "(555) 123-4568",
			LastVisit:        "2023-11-15",
			MedicalHistory:   "Hipertensión, Diabetes Tipo 2",
		},
		{
			IDNumber:         "87654321",
			FirstName:        "María Elena",
			LastName:         "García López",
			Phone:            "(555) 987-6543",
			Email:            "maria.garcia@email.com",
			BirthDate:        "1990-07-22",
			Address:          "Avenida Central 456, Ciudad",
			EmergencyContact: "Carlos García",
			EmergencyPhone:   "(555) 987-6544",
			LastVisit:        "2023-12-08",
		},
		{
			IDNumber:         "11223344",
			FirstName:        "Pedro Antonio",
			LastName:         "Martínez Ruiz",
			Phone:            "(555) 456-7890",
			Email:            "pedro.martinez@email.com",
			BirthDate:        "1978-12-03",
			Address:          "Plaza Mayor 789, Ciudad",
			EmergencyContact: "Ana Martínez",
			EmergencyPhone:   "(555) 456-7891",
			LastVisit:        "2023-10-20",
		},
		{
			IDNumber:         "55667788",
			FirstName:        "Ana Sofía",
			LastName:         "López Fernández",
			Phone:            "(555) 321-6547",
			Email:            "ana.lopez@email.com",
			BirthDate:        "1992-05-18",
			Address:          "Calle Secundaria 321, Ciudad",
			EmergencyContact: "Luis López",
			EmergencyPhone:   "(555) 321-6548",
			LastVisit:        "2023-09-12",
		},
		{
			IDNumber:         "99887766",
			FirstName:        "Carlos Eduardo",
			LastName:         "Rodríguez Silva",
			Phone:            "(555) 654-3210",
			Email:            "carlos.rodriguez@email.com",
			BirthDate:        "1988-01-30",
			Address:          "Avenida Norte 654, Ciudad",
			EmergencyContact: "Elena Rodríguez",
			EmergencyPhone:   "(555) 654-3211",
			LastVisit:        "2023-08-25",
		},
	}
}
