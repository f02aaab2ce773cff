package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		step  int
		want  []string
	}{
		{
			name:  "even tiling",
			start: "08:00", end: "16:00", step: 60,
			want: []string{"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00"},
		},
		{
			name:  "uneven tiling drops trailing partial slot",
			start: "09:00", end: "15:00", step: 50,
			// only the generation point is checked: 14:50 < 15:00 is emitted,
			// the next cursor 15:40 is not
			want: []string{"09:00", "09:50", "10:40", "11:30", "12:20", "13:10", "14:00", "14:50"},
		},
		{
			name:  "short window",
			start: "13:00", end: "14:00", step: 45,
			want: []string{"13:00"},
		},
		{
			name:  "cursor reaching end exactly is not emitted",
			start: "08:00", end: "09:00", step: 30,
			want: []string{"08:00", "08:30"},
		},
		{
			name:  "end before start",
			start: "16:00", end: "08:00", step: 30,
			want: nil,
		},
		{
			name:  "zero duration",
			start: "08:00", end: "16:00", step: 0,
			want: nil,
		},
		{
			name:  "malformed start",
			start: "8h00", end: "16:00", step: 30,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlots(tt.start, tt.end, tt.step))
		})
	}
}

func TestParseClock(t *testing.T) {
	min, err := parseClock("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, min)

	_, err = parseClock("24:00")
	assert.Error(t, err)
	_, err = parseClock("09:60")
	assert.Error(t, err)
	_, err = parseClock("0930")
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:05", formatClock(485))
	assert.Equal(t, "00:00", formatClock(0))
	assert.Equal(t, "23:59", formatClock(1439))
}

func TestOverlaps(t *testing.T) {
	// Half-open intervals: touching endpoints do not overlap.
	assert.False(t, overlaps(540, 600, 600, 660))
	assert.False(t, overlaps(600, 660, 540, 600))
	assert.True(t, overlaps(540, 600, 570, 630))
	assert.True(t, overlaps(540, 600, 500, 700))
	assert.True(t, overlaps(540, 600, 540, 600))
	assert.False(t, overlaps(540, 600, 700, 760))
}
