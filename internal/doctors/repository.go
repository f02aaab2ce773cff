package doctors

import "context"

// Registry defines read-only access to the practitioner catalog.
type Registry interface {
	// BySpecialty returns all doctors for a specialty in catalog insertion order.
	BySpecialty(ctx context.Context, specialty Specialty) []Doctor
	// ByID returns the doctor with the given identifier. Absence is not an error.
	ByID(ctx context.Context, id string) (Doctor, bool)
}

// InMemoryRegistry is a Registry backed by the compiled-in seed catalog.
// The slice is never mutated after construction, so the registry is safe
// for concurrent use without locking.
type InMemoryRegistry struct {
	doctors []Doctor
	byID    map[string]Doctor
}

// NewInMemoryRegistry creates a registry over the given catalog.
func NewInMemoryRegistry(catalog []Doctor) *InMemoryRegistry {
	byID := make(map[string]Doctor, len(catalog))
	for _, d := range catalog {
		byID[d.ID] = d
	}
	return &InMemoryRegistry{
		doctors: catalog,
		byID:    byID,
	}
}

// NewSeededRegistry creates a registry over the default clinic catalog.
func NewSeededRegistry() *InMemoryRegistry {
	return NewInMemoryRegistry(SeedDoctors())
}

// BySpecialty returns all doctors for a specialty in insertion order.
func (r *InMemoryRegistry) BySpecialty(ctx context.Context, specialty Specialty) []Doctor {
	var out []Doctor
	for _, d := range r.doctors {
		if d.Specialty == specialty {
			out = append(out, d)
		}
	}
	return out
}

// ByID returns the doctor with the given identifier.
func (r *InMemoryRegistry) ByID(ctx context.Context, id string) (Doctor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// All returns the full catalog in insertion order.
func (r *InMemoryRegistry) All() []Doctor {
	return r.doctors
}
