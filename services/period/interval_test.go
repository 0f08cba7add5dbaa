package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func millisAt(hour, min int) int64 {
	return time.Date(2026, time.March, 9, hour, min, 0, 0, time.UTC).UnixMilli()
}

func TestIsValidTimeGap(t *testing.T) {
	start := millisAt(9, 0)

	tests := []struct {
		name    string
		endTime int64
		want    bool
	}{
		{"30 minutes", start + 30*60*1000, true},
		{"60 minutes", start + 60*60*1000, true},
		{"90 minutes", start + 90*60*1000, true},
		{"120 minutes", start + 120*60*1000, true},
		{"45 minutes", start + 45*60*1000, false},
		{"150 minutes", start + 150*60*1000, false},
		{"zero length", start, false},
		{"negative length", start - 30*60*1000, false},
		{"60 minutes plus one millisecond", start + 60*60*1000 + 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTimeGap(start, tt.endTime))
		})
	}
}

func TestIsBoldTime(t *testing.T) {
	tests := []struct {
		name      string
		timestamp int64
		want      bool
	}{
		{"on the hour", millisAt(14, 0), true},
		{"on the half hour", millisAt(14, 30), true},
		{"quarter past", millisAt(14, 15), false},
		{"stray seconds", millisAt(14, 0) + 5_000, false},
		{"stray milliseconds", millisAt(14, 30) + 1, false},
		{"midnight", millisAt(0, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBoldTime(tt.timestamp))
		})
	}
}

func TestIsSameDayInZone(t *testing.T) {
	// 23:30 to 00:30 UTC crosses midnight in UTC but not in every zone.
	late := time.Date(2026, time.March, 9, 23, 30, 0, 0, time.UTC).UnixMilli()
	next := time.Date(2026, time.March, 10, 0, 30, 0, 0, time.UTC).UnixMilli()

	assert.False(t, IsSameDayInZone(late, next, "UTC"))
	// UTC-4 in March: 19:30 to 20:30 on the same local date.
	assert.True(t, IsSameDayInZone(late, next, "America/New_York"))
	// UTC+1: 00:30 to 01:30, already the next local date for both.
	assert.True(t, IsSameDayInZone(late, next, "Africa/Douala"))

	morning := millisAt(9, 0)
	assert.True(t, IsSameDayInZone(morning, morning+60*60*1000, "UTC"))

	// Unknown zones fail closed.
	assert.False(t, IsSameDayInZone(morning, morning+60*60*1000, "Mars/Olympus"))
}
