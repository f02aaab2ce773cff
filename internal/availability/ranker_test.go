package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/appointments"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/doctors"
)

func workweek() []time.Weekday {
	return []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
}

func TestRankSortsByAvailableSlotsDescending(t *testing.T) {
	docs := []doctors.Doctor{
		// 4 candidate slots, 2 blocked below.
		{ID: "d1", WorkStart: "08:00", WorkEnd: "12:00", WorkDays: workweek(), SlotMinutes: 60},
		// 8 candidate slots, none blocked.
		{ID: "d2", WorkStart: "08:00", WorkEnd: "16:00", WorkDays: workweek(), SlotMinutes: 60},
	}
	ledger := appointments.NewInMemoryLedger([]appointments.Appointment{
		{ID: "a1", DoctorID: "d1", Date: "2024-01-29", StartTime: "08:00", Minutes: 60, Status: appointments.StatusConfirmed},
		{ID: "a2", DoctorID: "d1", Date: "2024-01-29", StartTime: "09:00", Minutes: 60, Status: appointments.StatusConfirmed},
	})
	resolver := NewResolver(ledger)

	ranked := resolver.Rank(context.Background(), docs, monday)
	require.Len(t, ranked, 2)
	assert.Equal(t, "d2", ranked[0].Doctor.ID)
	assert.Equal(t, 8, ranked[0].AvailableSlots)
	assert.Equal(t, "d1", ranked[1].Doctor.ID)
	assert.Equal(t, 2, ranked[1].AvailableSlots)
}

func TestRankExcludesFullyBookedDoctors(t *testing.T) {
	docs := []doctors.Doctor{
		{ID: "d1", WorkStart: "08:00", WorkEnd: "09:00", WorkDays: workweek(), SlotMinutes: 60},
		{ID: "d2", WorkStart: "08:00", WorkEnd: "10:00", WorkDays: workweek(), SlotMinutes: 60},
	}
	ledger := appointments.NewInMemoryLedger([]appointments.Appointment{
		{ID: "a1", DoctorID: "d1", Date: "2024-01-29", StartTime: "08:00", Minutes: 60, Status: appointments.StatusConfirmed},
	})
	resolver := NewResolver(ledger)

	ranked := resolver.Rank(context.Background(), docs, monday)
	require.Len(t, ranked, 1)
	assert.Equal(t, "d2", ranked[0].Doctor.ID)
}

func TestRankExcludesDoctorsOffThatDay(t *testing.T) {
	docs := []doctors.Doctor{
		{ID: "d1", WorkStart: "08:00", WorkEnd: "16:00", WorkDays: workweek(), SlotMinutes: 60},
	}
	resolver := NewResolver(appointments.NewSeededLedger())

	ranked := resolver.Rank(context.Background(), docs, sunday)
	assert.Empty(t, ranked)
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	docs := []doctors.Doctor{
		{ID: "d1", WorkStart: "08:00", WorkEnd: "12:00", WorkDays: workweek(), SlotMinutes: 60},
		{ID: "d2", WorkStart: "13:00", WorkEnd: "17:00", WorkDays: workweek(), SlotMinutes: 60},
		{ID: "d3", WorkStart: "08:00", WorkEnd: "12:00", WorkDays: workweek(), SlotMinutes: 60},
	}
	resolver := NewResolver(appointments.NewSeededLedger())

	ranked := resolver.Rank(context.Background(), docs, monday)
	require.Len(t, ranked, 3)
	assert.Equal(t, "d1", ranked[0].Doctor.ID)
	assert.Equal(t, "d2", ranked[1].Doctor.ID)
	assert.Equal(t, "d3", ranked[2].Doctor.ID)
}

func TestRankEmptyInput(t *testing.T) {
	resolver := NewResolver(appointments.NewSeededLedger())

	ranked := resolver.Rank(context.Background(), nil, monday)
	assert.Empty(t, ranked)
}
