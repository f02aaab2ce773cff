package patients

import "context"

// Directory defines read-only access to registered patients.
type Directory interface {
	// FindByID looks a patient up by national ID number. A miss is a normal
	// outcome, not an error.
	FindByID(ctx context.Context, idNumber string) (Patient, bool)
}

// InMemoryDirectory is a Directory over the compiled-in patient records.
type InMemoryDirectory struct {
	byID map[string]Patient
}

// NewInMemoryDirectory creates a directory over the given records.
func NewInMemoryDirectory(records []Patient) *InMemoryDirectory {
	byID := make(map[string]Patient, len(records))
	for _, p := range records {
		byID[p.IDNumber] = p
	}
	return &InMemoryDirectory{byID: byID}
}

// NewSeededDirectory creates a directory over the default patient records.
func NewSeededDirectory() *InMemoryDirectory {
	return NewInMemoryDirectory(SeedPatients())
}

// FindByID looks a patient up by national ID number.
func (d *InMemoryDirectory) FindByID(ctx context.Context, idNumber string) (Patient, bool) {
	p, ok := d.byID[idNumber]
	return p, ok
}
