package builders

import (
	"encoding/json"
	"testing"

	"hoteldesk/constants"
	"hoteldesk/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingBuilder(t *testing.T) {
	hotel := constants.HotelInfo{
		ID:      "HTL-001",
		Name:    "Grand Palace Hotel",
		Address: "12 MG Road, Bengaluru",
		Phone:   "080-22334455",
		Email:   "frontdesk@grandpalace.example",
	}

	booking := NewBookingBuilder().
		WithBookingNumber(1234567890).
		WithGuest("Asha Verma", "asha@example.com", "9876543210", "Pune", "Aadhar", "1234-5678-9012").
		WithRoom(constants.RoomTypeDeluxe, "301", 3500).
		WithStay("2026-08-31", "2026-09-02", 2, 2).
		WithAdditionalGuests([]types.Guest{{Name: "Rohan Verma", Age: 34}}).
		WithStatus(constants.BookingStatusCheckedIn, constants.BookingTypeWalkIn).
		WithLoyaltyDiscount(10, 700).
		WithCustomer(7).
		WithHotel(hotel).
		WithAdmin(3).
		Build()

	assert.Equal(t, int64(1234567890), booking.BookingNumber)
	assert.Equal(t, "Asha Verma", booking.GuestName)
	assert.Equal(t, "9876543210", booking.GuestPhone)
	assert.Equal(t, "301", booking.RoomNumber)
	assert.Equal(t, 2, booking.Nights)
	assert.Equal(t, constants.BookingStatusCheckedIn, booking.Status)
	assert.Equal(t, constants.BookingTypeWalkIn, booking.BookingType)
	assert.Equal(t, 10.0, booking.LoyaltyDiscount)
	assert.Equal(t, uint(7), booking.CustomerID)
	assert.Equal(t, "Grand Palace Hotel", booking.HotelName)
	assert.Equal(t, uint(3), booking.AdminID)

	var guests []types.Guest
	require.NoError(t, json.Unmarshal(booking.Guests, &guests))
	require.Len(t, guests, 1)
	assert.Equal(t, "Rohan Verma", guests[0].Name)
}

func TestBookingBuilderEmptyGuestList(t *testing.T) {
	booking := NewBookingBuilder().WithAdditionalGuests(nil).Build()
	assert.Nil(t, booking.Guests)
}
