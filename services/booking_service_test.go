package services

import (
	"testing"
	"time"

	"hoteldesk/constants"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingNumber(t *testing.T) {
	now := time.UnixMilli(1700001234567)

	for i := 0; i < 100; i++ {
		number := GenerateBookingNumber(now)
		// Last seven timestamp digits shifted left by the three random
		// digits.
		assert.GreaterOrEqual(t, number, int64(1234567000))
		assert.LessOrEqual(t, number, int64(1234567999))
	}
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		checkInDate string
		wantStatus  int
		wantType    int
	}{
		{"check-in today is a walk-in", "2026-08-31", constants.BookingStatusCheckedIn, constants.BookingTypeWalkIn},
		{"past check-in is a walk-in", "2026-08-01", constants.BookingStatusCheckedIn, constants.BookingTypeWalkIn},
		{"tomorrow is an advance reservation", "2026-09-01", constants.BookingStatusConfirmed, constants.BookingTypeAdvance},
		{"far future is an advance reservation", "2026-12-24", constants.BookingStatusConfirmed, constants.BookingTypeAdvance},
		{"unparseable date falls back to advance", "31/08/2026", constants.BookingStatusConfirmed, constants.BookingTypeAdvance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, bookingType := DeriveStatus(tt.checkInDate, now)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantType, bookingType)
		})
	}
}

func TestDeriveStatusAheadOfUTC(t *testing.T) {
	// Morning in a zone ahead of UTC: a check-in dated today must still
	// register as a walk-in.
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, ist)

	status, bookingType := DeriveStatus("2026-08-31", now)
	assert.Equal(t, constants.BookingStatusCheckedIn, status)
	assert.Equal(t, constants.BookingTypeWalkIn, bookingType)

	status, bookingType = DeriveStatus("2026-09-01", now)
	assert.Equal(t, constants.BookingStatusConfirmed, status)
	assert.Equal(t, constants.BookingTypeAdvance, bookingType)
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2026-08-31", "2026-09-03", 3},
		{"one night", "2026-08-31", "2026-09-01", 1},
		{"same day counts as one night", "2026-08-31", "2026-08-31", 1},
		{"reversed range clamps to one night", "2026-09-03", "2026-08-31", 1},
		{"bad date clamps to one night", "bad", "2026-09-01", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NightsBetween(tt.checkIn, tt.checkOut))
		})
	}
}
