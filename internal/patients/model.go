package patients

// Patient is a registered patient record, keyed by national ID number.
type Patient struct {
	IDNumber         string `json:"cedula"`
	FirstName        string `json:"nombre"`
	LastName         string `json:"apellido"`
	Phone            string `json:"telefono"`
	Email            string `json:"email"`
	BirthDate        string `json:"fechaNacimiento"`
	Address          string `json:"direccion,omitempty"`
	EmergencyContact string `json:"contactoEmergencia,omitempty"`
	EmergencyPhone   string `json:"telefonoEmergencia,omitempty"`
	LastVisit        string `json:"ultimaVisita,omitempty"`
	MedicalHistory   string `json:"historialMedico,omitempty"`
}
