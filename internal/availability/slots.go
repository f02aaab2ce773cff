// Package availability computes open appointment slots for a doctor's working
// window against the ledger of confirmed bookings. Everything here is a pure
// function over immutable seed data; results are produced fresh on every
// query and never cached.
package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateSlots walks a cursor from start to end in stepMinutes increments and
// returns the HH:MM value at each stop. No slot is emitted once the cursor has
// reached or passed end, so a trailing partial slot is dropped rather than
// truncated. Times are naive wall-clock values; there is no timezone handling.
func GenerateSlots(start, end string, stepMinutes int) []string {
	startMin, err := parseClock(start)
	if err != nil {
		return nil
	}
	endMin, err := parseClock(end)
	if err != nil {
		return nil
	}
	if stepMinutes <= 0 || startMin >= endMin {
		return nil
	}

	var slots []string
	for cursor := startMin; cursor < endMin; cursor += stepMinutes {
		slots = append(slots, formatClock(cursor))
	}
	return slots
}

// parseClock converts HH:MM to minutes since midnight.
func parseClock(hhmm string) (int, error) {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0, fmt.Errorf("availability: malformed time %q", hhmm)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("availability: malformed hour in %q", hhmm)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("availability: malformed minute in %q", hhmm)
	}
	return hours*60 + minutes, nil
}

// formatClock converts minutes since midnight back to HH:MM.
func formatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// overlaps reports whether the half-open intervals [a0,a1) and [b0,b1)
// intersect. Touching endpoints do not count as overlap.
func overlaps(a0, a1, b0, b1 int) bool {
	return a0 < b1 && b0 < a1
}
