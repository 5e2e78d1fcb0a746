package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %s: %v", value, err)
	}
	return d
}

func TestBookingOverlaps(t *testing.T) {
	booking := &Booking{
		CheckIn:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"identical range", "2024-06-10", "2024-06-13", true},
		{"contained range", "2024-06-11", "2024-06-12", true},
		{"containing range", "2024-06-09", "2024-06-14", true},
		{"overlap at start", "2024-06-08", "2024-06-11", true},
		{"overlap at end", "2024-06-12", "2024-06-15", true},
		{"starts on booking check-out", "2024-06-13", "2024-06-15", false},
		{"ends on booking check-in", "2024-06-08", "2024-06-10", false},
		{"entirely before", "2024-06-01", "2024-06-05", false},
		{"entirely after", "2024-06-20", "2024-06-25", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(day(t, tt.checkIn), day(t, tt.checkOut)))
		})
	}
}

func TestIsValidDateRange(t *testing.T) {
	assert.True(t, IsValidDateRange(day(t, "2024-06-01"), day(t, "2024-06-02")))
	assert.False(t, IsValidDateRange(day(t, "2024-06-02"), day(t, "2024-06-01")))
	assert.False(t, IsValidDateRange(day(t, "2024-06-01"), day(t, "2024-06-01")))
}

func TestIsPositiveAmount(t *testing.T) {
	assert.True(t, IsPositiveAmount(1))
	assert.True(t, IsPositiveAmount(1500000))
	assert.False(t, IsPositiveAmount(0))
	assert.False(t, IsPositiveAmount(-100))
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, Nights(day(t, "2024-06-01"), day(t, "2024-06-02")))
	assert.Equal(t, 3, Nights(day(t, "2024-06-01"), day(t, "2024-06-04")))
	assert.Equal(t, 0, Nights(day(t, "2024-06-01"), day(t, "2024-06-01")))

	booking := &Booking{
		CheckIn:  day(t, "2024-06-10"),
		CheckOut: day(t, "2024-06-13"),
	}
	assert.Equal(t, 3, booking.Nights())
}
