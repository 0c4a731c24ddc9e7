package models

import (
	"testing"

	"hoteldesk/constants"

	"github.com/stretchr/testify/assert"
)

func TestHasBill(t *testing.T) {
	booking := Booking{Status: constants.BookingStatusCheckedOut, InvoiceNumber: "INV-1700001234567"}
	assert.True(t, booking.HasBill())

	// Checked out but never invoiced.
	booking = Booking{Status: constants.BookingStatusCheckedOut}
	assert.False(t, booking.HasBill())

	// Invoice number alone is not enough while the guest is in house.
	booking = Booking{Status: constants.BookingStatusCheckedIn, InvoiceNumber: "INV-1700001234567"}
	assert.False(t, booking.HasBill())
}

func TestEffectiveCheckOutDate(t *testing.T) {
	booking := Booking{CheckOutDate: "2026-09-02"}
	assert.Equal(t, "2026-09-02", booking.EffectiveCheckOutDate())

	booking.ActualCheckOutDate = "2026-08-31"
	assert.Equal(t, "2026-08-31", booking.EffectiveCheckOutDate())
}
