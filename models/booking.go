package models

import (
	"encoding/json"
	"time"

	"hoteldesk/constants"
)

// Bill is the GST invoice breakdown computed at checkout and stored flat
// on the booking row (bill_* columns).
type Bill struct {
	RoomCharges       float64 `json:"roomCharges"`
	AdditionalCharges float64 `json:"additionalCharges"`
	Discount          float64 `json:"discount"`
	TotalBeforeTax    float64 `json:"totalBeforeTax"`
	CGST              float64 `json:"cgst"`
	SGST              float64 `json:"sgst"`
	TotalTax          float64 `json:"totalTax"`
	GrandTotal        float64 `json:"grandTotal"`
}

type Booking struct {
	ID            uint  `json:"id" gorm:"primaryKey"`
	BookingNumber int64 `json:"bookingNumber" gorm:"index"`
	CustomerID    uint  `json:"customerId"`

	// Guest entry fields, copied from the check-in form
	GuestName     string `json:"guestName"`
	GuestEmail    string `json:"guestEmail,omitempty"`
	GuestPhone    string `json:"guestPhone"`
	GuestAddress  string `json:"guestAddress,omitempty"`
	IDProofType   string `json:"idProofType"`
	IDProofNumber string `json:"idProofNumber"`

	// Stay fields
	RoomType       int             `json:"roomType"`
	RoomNumber     string          `json:"roomNumber"`
	CheckInDate    string          `json:"checkInDate"`
	CheckOutDate   string          `json:"checkOutDate"`
	NumberOfGuests int             `json:"numberOfGuests"`
	RoomRate       float64         `json:"roomRate"`
	Guests         json.RawMessage `json:"guests,omitempty" gorm:"type:json"`

	Status        int  `json:"status"`
	BookingType   int  `json:"bookingType"`
	PaymentStatus int  `json:"paymentStatus"`
	PaymentMethod *int `json:"paymentMethod,omitempty"`

	LoyaltyDiscount       float64 `json:"loyaltyDiscount"`
	LoyaltyDiscountAmount float64 `json:"loyaltyDiscountAmount"`

	ActualCheckInTime *time.Time `json:"actualCheckInTime,omitempty"`

	// Checkout / invoice fields, zero until the booking is checked out
	CheckedOutAt          *time.Time `json:"checkedOutAt,omitempty"`
	ActualCheckOutDate    string     `json:"actualCheckOutDate,omitempty"`
	Nights                int        `json:"nights,omitempty"`
	AdditionalChargesDesc string     `json:"additionalChargesDescription,omitempty"`
	DiscountDesc          string     `json:"discountDescription,omitempty"`
	InvoiceNumber         string     `json:"invoiceNumber,omitempty" gorm:"size:30"`
	InvoiceDate           *time.Time `json:"invoiceDate,omitempty"`
	Bill                  Bill       `json:"bill" gorm:"embedded;embeddedPrefix:bill_"`

	// Hotel identity stamped at creation time
	HotelID      string `json:"hotelId"`
	HotelName    string `json:"hotelName"`
	HotelAddress string `json:"hotelAddress"`
	HotelPhone   string `json:"hotelPhone"`
	HotelEmail   string `json:"hotelEmail"`

	// Owning staff account, used to scope reads
	AdminID uint `json:"adminId" gorm:"index"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// HasBill reports whether a checkout has produced an invoice for this
// booking. Bookings without a bill contribute zero revenue.
func (b *Booking) HasBill() bool {
	return b.Status == constants.BookingStatusCheckedOut && b.InvoiceNumber != ""
}

// EffectiveCheckOutDate is the actual checkout date when recorded,
// otherwise the planned one.
func (b *Booking) EffectiveCheckOutDate() string {
	if b.ActualCheckOutDate != "" {
		return b.ActualCheckOutDate
	}
	return b.CheckOutDate
}
