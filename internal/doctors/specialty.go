package doctors

// Specialty is a fixed category of medical practice. The same enumeration is
// used by the registry filter and by the triage classifier so the two can
// never drift apart.
type Specialty string

const (
	SpecialtyMedicinaGeneral Specialty = "Medicina General"
	SpecialtyCardiologia     Specialty = "Cardiología"
	SpecialtyDermatologia    Specialty = "Dermatología"
	SpecialtyGastro          Specialty = "Gastroenterología"
	SpecialtyGinecologia     Specialty = "Ginecología"
	SpecialtyNeurologia      Specialty = "Neurología"
	SpecialtyNeumologia      Specialty = "Neumología"
	SpecialtyOftalmologia    Specialty = "Oftalmología"
	SpecialtyOrtopedia       Specialty = "Ortopedia"
	SpecialtyPediatria       Specialty = "Pediatría"
	SpecialtyPsiquiatria     Specialty = "Psiquiatría"
	SpecialtyUrologia        Specialty = "Urología"
)

// AllSpecialties returns the enumeration in a stable order.
func AllSpecialties() []Specialty {
	return []Specialty{
		SpecialtyMedicinaGeneral,
		SpecialtyCardiologia,
		SpecialtyDermatologia,
		SpecialtyGastro,
		SpecialtyGinecologia,
		SpecialtyNeurologia,
		SpecialtyNeumologia,
		SpecialtyOftalmologia,
		SpecialtyOrtopedia,
		SpecialtyPediatria,
		SpecialtyPsiquiatria,
		SpecialtyUrologia,
	}
}

// IsValid reports whether s is a member of the enumeration.
func (s Specialty) IsValid() bool {
	for _, known := range AllSpecialties() {
		if s == known {
			return true
		}
	}
	return false
}

func (s Specialty) String() string { return string(s) }
