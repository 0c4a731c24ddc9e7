package services

import (
	"testing"
	"time"

	"hoteldesk/constants"
	"hoteldesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(constants.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestGenerateDefaultRooms(t *testing.T) {
	rooms := generateDefaultRooms()

	require.Len(t, rooms, 42)

	byType := map[int]int{}
	numbers := map[string]bool{}
	for _, room := range rooms {
		byType[room.Type]++
		assert.False(t, numbers[room.RoomNumber], "duplicate room number %s", room.RoomNumber)
		numbers[room.RoomNumber] = true
		assert.Equal(t, constants.RoomStatusAvailable, room.Status)
	}

	assert.Equal(t, 20, byType[constants.RoomTypeStandard])
	assert.Equal(t, 16, byType[constants.RoomTypeDeluxe])
	assert.Equal(t, 6, byType[constants.RoomTypeSuite])

	assert.True(t, numbers["101"])
	assert.True(t, numbers["210"])
	assert.True(t, numbers["308"])
	assert.True(t, numbers["506"])
	assert.False(t, numbers["507"])
}

func TestBookingBlocksRange(t *testing.T) {
	base := models.Booking{
		RoomNumber:   "101",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-05",
		Status:       constants.BookingStatusCheckedIn,
	}

	tests := []struct {
		name    string
		booking models.Booking
		start   string
		end     string
		want    bool
	}{
		{"overlapping range blocks", base, "2026-09-04", "2026-09-06", true},
		{"contained range blocks", base, "2026-09-02", "2026-09-03", true},
		{"stay ending on requested start is free", base, "2026-09-05", "2026-09-07", false},
		{"stay starting on requested end is free", base, "2026-08-30", "2026-09-01", false},
		{
			"checked-out stay never blocks",
			models.Booking{
				RoomNumber:   "101",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-05",
				Status:       constants.BookingStatusCheckedOut,
			},
			"2026-09-02", "2026-09-04", false,
		},
		{
			"actual checkout shortens the blocked window",
			models.Booking{
				RoomNumber:         "101",
				CheckInDate:        "2026-09-01",
				CheckOutDate:       "2026-09-05",
				ActualCheckOutDate: "2026-09-03",
				Status:             constants.BookingStatusCheckedIn,
			},
			"2026-09-03", "2026-09-05", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bookingBlocksRange(tt.booking, mustDate(t, tt.start), mustDate(t, tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterAvailableRooms(t *testing.T) {
	rooms := []models.Room{
		{RoomNumber: "101", Type: constants.RoomTypeStandard, Status: constants.RoomStatusAvailable},
		{RoomNumber: "102", Type: constants.RoomTypeStandard, Status: constants.RoomStatusMaintenance},
		{RoomNumber: "301", Type: constants.RoomTypeDeluxe, Status: constants.RoomStatusOccupied},
	}
	bookings := []models.Booking{
		{RoomNumber: "301", CheckInDate: "2026-09-01", CheckOutDate: "2026-09-10", Status: constants.BookingStatusCheckedIn},
	}

	start := mustDate(t, "2026-09-02")
	end := mustDate(t, "2026-09-04")

	available := filterAvailableRooms(rooms, bookings, start, end, nil)
	require.Len(t, available, 1)
	assert.Equal(t, "101", available[0].RoomNumber)

	// A type filter narrows further.
	deluxe := constants.RoomTypeDeluxe
	available = filterAvailableRooms(rooms, bookings, start, end, &deluxe)
	assert.Empty(t, available)

	// Outside the booked window the deluxe room frees up; the room's
	// own status field does not gate date-range availability.
	available = filterAvailableRooms(rooms, bookings, mustDate(t, "2026-09-10"), mustDate(t, "2026-09-12"), &deluxe)
	require.Len(t, available, 1)
	assert.Equal(t, "301", available[0].RoomNumber)
}

func TestComputeOccupancy(t *testing.T) {
	assert.Equal(t, OccupancyStats{}, computeOccupancy(nil))

	rooms := []models.Room{
		{Status: constants.RoomStatusOccupied},
		{Status: constants.RoomStatusOccupied},
		{Status: constants.RoomStatusAvailable},
		{Status: constants.RoomStatusMaintenance},
		{Status: constants.RoomStatusReserved},
		{Status: constants.RoomStatusAvailable},
	}

	stats := computeOccupancy(rooms)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.Occupied)
	assert.Equal(t, 2, stats.Available)
	assert.Equal(t, 1, stats.Maintenance)
	assert.Equal(t, 1, stats.Reserved)
	assert.InDelta(t, 33.3, stats.OccupancyRate, 1e-9)
}
