package builders

import (
	"encoding/json"

	"hoteldesk/constants"
	"hoteldesk/models"
	"hoteldesk/types"
)

// BookingBuilder assembles a booking record step by step so the
// creation path reads as a sequence of named decisions instead of a
// struct literal with thirty fields.
type BookingBuilder struct {
	booking models.Booking
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{}
}

func (b *BookingBuilder) WithBookingNumber(number int64) *BookingBuilder {
	b.booking.BookingNumber = number
	return b
}

func (b *BookingBuilder) WithGuest(name, email, phone, address, idProofType, idProofNumber string) *BookingBuilder {
	b.booking.GuestName = name
	b.booking.GuestEmail = email
	b.booking.GuestPhone = phone
	b.booking.GuestAddress = address
	b.booking.IDProofType = idProofType
	b.booking.IDProofNumber = idProofNumber
	return b
}

func (b *BookingBuilder) WithRoom(roomType int, roomNumber string, rate float64) *BookingBuilder {
	b.booking.RoomType = roomType
	b.booking.RoomNumber = roomNumber
	b.booking.RoomRate = rate
	return b
}

func (b *BookingBuilder) WithStay(checkInDate, checkOutDate string, nights, numberOfGuests int) *BookingBuilder {
	b.booking.CheckInDate = checkInDate
	b.booking.CheckOutDate = checkOutDate
	b.booking.Nights = nights
	b.booking.NumberOfGuests = numberOfGuests
	return b
}

func (b *BookingBuilder) WithAdditionalGuests(guests []types.Guest) *BookingBuilder {
	if len(guests) == 0 {
		return b
	}
	data, err := json.Marshal(guests)
	if err != nil {
		return b
	}
	b.booking.Guests = data
	return b
}

func (b *BookingBuilder) WithStatus(status, bookingType int) *BookingBuilder {
	b.booking.Status = status
	b.booking.BookingType = bookingType
	return b
}

func (b *BookingBuilder) WithLoyaltyDiscount(percent, amount float64) *BookingBuilder {
	b.booking.LoyaltyDiscount = percent
	b.booking.LoyaltyDiscountAmount = amount
	return b
}

func (b *BookingBuilder) WithCustomer(customerID uint) *BookingBuilder {
	b.booking.CustomerID = customerID
	return b
}

func (b *BookingBuilder) WithHotel(hotel constants.HotelInfo) *BookingBuilder {
	b.booking.HotelID = hotel.ID
	b.booking.HotelName = hotel.Name
	b.booking.HotelAddress = hotel.Address
	b.booking.HotelPhone = hotel.Phone
	b.booking.HotelEmail = hotel.Email
	return b
}

func (b *BookingBuilder) WithAdmin(adminID uint) *BookingBuilder {
	b.booking.AdminID = adminID
	return b
}

func (b *BookingBuilder) Build() models.Booking {
	return b.booking
}
