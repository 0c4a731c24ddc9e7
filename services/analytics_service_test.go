package services

import (
	"testing"
	"time"

	"hoteldesk/constants"
	"hoteldesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func billedBooking(roomType int, grandTotal float64, createdAt time.Time) models.Booking {
	return models.Booking{
		RoomType:      roomType,
		Status:        constants.BookingStatusCheckedOut,
		InvoiceNumber: "INV-1",
		Bill:          models.Bill{GrandTotal: grandTotal, TotalTax: grandTotal * 0.12 / 1.12},
		CreatedAt:     createdAt,
	}
}

func TestComputePeriodSummary(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		billedBooking(constants.RoomTypeStandard, 8400, now),
		billedBooking(constants.RoomTypeDeluxe, 3920, now),
		{Status: constants.BookingStatusCheckedIn, CreatedAt: now},
		{Status: constants.BookingStatusConfirmed, CreatedAt: now},
		// Checked out but never invoiced: counts as a checkout, earns
		// nothing.
		{Status: constants.BookingStatusCheckedOut, CreatedAt: now},
	}

	summary := ComputePeriodSummary(bookings)
	assert.Equal(t, 5, summary.TotalBookings)
	assert.Equal(t, 1, summary.CheckedIn)
	assert.Equal(t, 3, summary.CheckedOut)
	assert.Equal(t, 1, summary.Confirmed)
	assert.InDelta(t, 12320, summary.TotalRevenue, 1e-9)
	// Averaged over all five bookings in range, not just the billed ones.
	assert.InDelta(t, 2464, summary.AvgBookingValue, 1e-9)
	// Zero recorded nights default to one per checked-out stay.
	assert.InDelta(t, 1.0, summary.AvgStayNights, 1e-9)
}

func TestComputePeriodSummaryEmpty(t *testing.T) {
	summary := ComputePeriodSummary(nil)
	assert.Equal(t, 0, summary.TotalBookings)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.AvgBookingValue)
}

func TestComputeRevenueByRoomType(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		billedBooking(constants.RoomTypeStandard, 5000, now),
		billedBooking(constants.RoomTypeStandard, 3000, now),
		billedBooking(constants.RoomTypeSuite, 11200, now),
		{RoomType: constants.RoomTypeDeluxe, Status: constants.BookingStatusCheckedIn, CreatedAt: now},
	}

	revenue := ComputeRevenueByRoomType(bookings)
	require.Len(t, revenue, 3)

	assert.Equal(t, "standard", revenue[0].RoomType)
	assert.Equal(t, 2, revenue[0].Bookings)
	assert.InDelta(t, 8000, revenue[0].Revenue, 1e-9)

	assert.Equal(t, "deluxe", revenue[1].RoomType)
	assert.Equal(t, 0, revenue[1].Bookings)
	assert.Equal(t, 0.0, revenue[1].Revenue)

	assert.Equal(t, "suite", revenue[2].RoomType)
	assert.InDelta(t, 11200, revenue[2].Revenue, 1e-9)
}

func TestComputeMonthlyTrend(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		billedBooking(constants.RoomTypeStandard, 5000, now),
		billedBooking(constants.RoomTypeStandard, 2000, now.AddDate(0, -1, 0)),
		// Outside the six month window.
		billedBooking(constants.RoomTypeStandard, 9000, now.AddDate(0, -7, 0)),
		{Status: constants.BookingStatusConfirmed, CreatedAt: now},
	}

	trend := ComputeMonthlyTrend(bookings, now)
	require.Len(t, trend, 6)

	assert.Equal(t, "Mar 2026", trend[0].Month)
	assert.Equal(t, "Aug 2026", trend[5].Month)

	assert.Equal(t, 2, trend[5].Bookings)
	assert.InDelta(t, 5000, trend[5].Revenue, 1e-9)

	assert.Equal(t, 1, trend[4].Bookings)
	assert.InDelta(t, 2000, trend[4].Revenue, 1e-9)

	assert.Equal(t, 0, trend[0].Bookings)
}

func TestComputeDailyOccupancy(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		// In house the whole week.
		{RoomNumber: "101", CheckInDate: "2026-08-20", CheckOutDate: "2026-09-05", Status: constants.BookingStatusCheckedIn},
		// Departed mid-window; counts through the actual checkout day.
		{RoomNumber: "301", CheckInDate: "2026-08-25", CheckOutDate: "2026-09-02", ActualCheckOutDate: "2026-08-28", Status: constants.BookingStatusCheckedOut},
		// Room not assigned yet; the stay still counts.
		{RoomNumber: "", CheckInDate: "2026-08-25", CheckOutDate: "2026-09-02", Status: constants.BookingStatusCheckedIn},
	}

	trend := ComputeDailyOccupancy(bookings, 10, now)
	require.Len(t, trend, 7)

	assert.Equal(t, "2026-08-25", trend[0].Date)
	assert.Equal(t, "2026-08-31", trend[6].Date)

	assert.Equal(t, 3, trend[0].Bookings)
	assert.InDelta(t, 30.0, trend[0].OccupancyRate, 1e-9)

	// 301 is gone after Aug 28.
	assert.Equal(t, 3, trend[3].Bookings)
	assert.Equal(t, 2, trend[4].Bookings)
	assert.Equal(t, 2, trend[6].Bookings)
	assert.InDelta(t, 20.0, trend[6].OccupancyRate, 1e-9)
}

func TestComputeDailyOccupancyNoRooms(t *testing.T) {
	trend := ComputeDailyOccupancy(nil, 0, time.Now())
	require.Len(t, trend, 7)
	for _, day := range trend {
		assert.Equal(t, 0, day.Bookings)
		assert.Equal(t, 0.0, day.OccupancyRate)
	}
}
