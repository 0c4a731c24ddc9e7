package dto

import (
	"time"

	"hoteldesk/models"
	"hoteldesk/types"
)

// CreateBookingRequest is the check-in form payload
type CreateBookingRequest struct {
	GuestName     string `json:"guestName" binding:"required"`
	GuestEmail    string `json:"guestEmail"`
	GuestPhone    string `json:"guestPhone" binding:"required"`
	GuestAddress  string `json:"guestAddress"`
	IDProofType   string `json:"idProofType" binding:"required"`
	IDProofNumber string `json:"idProofNumber" binding:"required"`

	RoomType       int           `json:"roomType"`
	RoomNumber     string        `json:"roomNumber" binding:"required"`
	RoomRate       float64       `json:"roomRate" binding:"required"`
	CheckInDate    string        `json:"checkInDate" binding:"required"`
	CheckOutDate   string        `json:"checkOutDate" binding:"required"`
	NumberOfGuests int           `json:"numberOfGuests" binding:"required"`
	Guests         []types.Guest `json:"guests"`
}

// CheckoutRequest carries the staff-entered settlement figures
type CheckoutRequest struct {
	Nights             int     `json:"nights"`
	AdditionalCharges  float64 `json:"additionalCharges"`
	AdditionalDesc     string  `json:"additionalChargesDescription"`
	Discount           float64 `json:"discount"`
	DiscountDesc       string  `json:"discountDescription"`
	PaymentMethod      int     `json:"paymentMethod"`
	ActualCheckOutDate string  `json:"actualCheckOutDate"`
}

// PaymentUpdateRequest changes payment fields on a booking
type PaymentUpdateRequest struct {
	PaymentStatus int  `json:"paymentStatus"`
	PaymentMethod *int `json:"paymentMethod"`
}

// BookingResponse is the booking as the front desk sees it
type BookingResponse struct {
	ID             uint    `json:"id"`
	BookingNumber  int64   `json:"bookingNumber"`
	CustomerID     uint    `json:"customerId"`
	GuestName      string  `json:"guestName"`
	GuestEmail     string  `json:"guestEmail,omitempty"`
	GuestPhone     string  `json:"guestPhone"`
	RoomType       string  `json:"roomType"`
	RoomNumber     string  `json:"roomNumber"`
	RoomRate       float64 `json:"roomRate"`
	CheckInDate    string  `json:"checkInDate"`
	CheckOutDate   string  `json:"checkOutDate"`
	NumberOfGuests int     `json:"numberOfGuests"`
	Status         int     `json:"status"`
	BookingType    int     `json:"bookingType"`
	PaymentStatus  int     `json:"paymentStatus"`
	PaymentMethod  *int    `json:"paymentMethod,omitempty"`

	LoyaltyDiscount       float64 `json:"loyaltyDiscount"`
	LoyaltyDiscountAmount float64 `json:"loyaltyDiscountAmount"`

	InvoiceNumber string       `json:"invoiceNumber,omitempty"`
	Bill          *models.Bill `json:"bill,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// InvoiceResponse is the printable invoice view of a checked-out
// booking.
type InvoiceResponse struct {
	InvoiceNumber string      `json:"invoiceNumber"`
	InvoiceDate   string      `json:"invoiceDate"`
	BookingNumber int64       `json:"bookingNumber"`
	GuestName     string      `json:"guestName"`
	GuestPhone    string      `json:"guestPhone"`
	GuestAddress  string      `json:"guestAddress,omitempty"`
	RoomNumber    string      `json:"roomNumber"`
	RoomType      string      `json:"roomType"`
	CheckInDate   string      `json:"checkInDate"`
	CheckOutDate  string      `json:"checkOutDate"`
	Nights        int         `json:"nights"`
	RoomRate      float64     `json:"roomRate"`
	Bill          models.Bill `json:"bill"`
	PaymentMethod *int        `json:"paymentMethod,omitempty"`

	HotelName    string `json:"hotelName"`
	HotelAddress string `json:"hotelAddress"`
	HotelPhone   string `json:"hotelPhone"`
	HotelEmail   string `json:"hotelEmail"`
}
