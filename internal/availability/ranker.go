package availability

import (
	"context"
	"sort"
	"time"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/doctors"
)

// Rank resolves availability for every doctor in the input and returns only
// those with at least one open slot, most available first. Ties keep the
// input (catalog insertion) order.
func (r *Resolver) Rank(ctx context.Context, docs []doctors.Doctor, date time.Time) []DoctorAvailability {
	ranked := make([]DoctorAvailability, 0, len(docs))
	for _, d := range docs {
		if av := r.Resolve(ctx, d, date); av.AvailableSlots > 0 {
			ranked = append(ranked, av)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AvailableSlots > ranked[j].AvailableSlots
	})
	return ranked
}
