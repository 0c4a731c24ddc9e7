package services

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"hoteldesk/builders"
	"hoteldesk/constants"
	"hoteldesk/models"
	"hoteldesk/services/logger"
	"hoteldesk/types"

	"gorm.io/gorm"
)

// BookingService owns the booking ledger: creation, check-in, checkout
// with invoicing, and the day-to-day front-desk reads.
type BookingService struct {
	db        *gorm.DB
	logger    logger.Logger
	customers *CustomerService
	hotel     constants.HotelInfo
}

type BookingServiceOptions struct {
	DB        *gorm.DB
	Logger    logger.Logger
	Customers *CustomerService
	Hotel     constants.HotelInfo
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	return &BookingService{
		db:        opts.DB,
		logger:    opts.Logger,
		customers: opts.Customers,
		hotel:     opts.Hotel,
	}
}

// GenerateBookingNumber builds a 10-digit reference from the last seven
// digits of the millisecond timestamp plus a three-digit random suffix.
// Collisions are possible and not guarded against.
func GenerateBookingNumber(now time.Time) int64 {
	timestampPart := now.UnixMilli() % 10_000_000
	randomPart := rand.Int63n(1000)
	return timestampPart*1000 + randomPart
}

// DeriveStatus classifies a new booking by calendar day: a check-in
// date of today or earlier is an immediate walk-in check-in, a future
// date is an advance reservation. Dates compare as strings so the
// server timezone never shifts the calendar day.
func DeriveStatus(checkInDate string, now time.Time) (status, bookingType int) {
	if _, err := time.Parse(constants.DateLayout, checkInDate); err != nil {
		return constants.BookingStatusConfirmed, constants.BookingTypeAdvance
	}
	if checkInDate <= now.Format(constants.DateLayout) {
		return constants.BookingStatusCheckedIn, constants.BookingTypeWalkIn
	}
	return constants.BookingStatusConfirmed, constants.BookingTypeAdvance
}

// NightsBetween counts the nights from checkIn to checkOut, rounding
// partial days up. Same-day stays count as one night.
func NightsBetween(checkInDate, checkOutDate string) int {
	checkIn, err := time.Parse(constants.DateLayout, checkInDate)
	if err != nil {
		return 1
	}
	checkOut, err := time.Parse(constants.DateLayout, checkOutDate)
	if err != nil {
		return 1
	}
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// CreateBookingInput is the check-in form as the front desk submits it.
type CreateBookingInput struct {
	GuestName     string
	GuestEmail    string
	GuestPhone    string
	GuestAddress  string
	IDProofType   string
	IDProofNumber string

	RoomType       int
	RoomNumber     string
	RoomRate       float64
	CheckInDate    string
	CheckOutDate   string
	NumberOfGuests int
	Guests         []types.Guest

	AdminID uint
}

// Create records a new booking. The loyalty discount is taken from the
// guest's tier as it stands before this booking, the customer directory
// accrues the discounted room charge, and status/type are derived from
// the check-in date.
func (s *BookingService) Create(input CreateBookingInput) (*models.Booking, error) {
	now := time.Now()

	discountPercent, _, err := s.customers.DiscountForCustomer(input.GuestPhone, input.GuestEmail)
	if err != nil {
		return nil, err
	}

	nights := NightsBetween(input.CheckInDate, input.CheckOutDate)
	roomCharges := input.RoomRate * float64(nights)
	discountAmount := roomCharges * discountPercent / 100
	finalAmount := roomCharges - discountAmount

	customer, err := s.customers.Upsert(CustomerUpsertInput{
		Name:          input.GuestName,
		Email:         input.GuestEmail,
		Phone:         input.GuestPhone,
		Address:       input.GuestAddress,
		IDProofType:   input.IDProofType,
		IDProofNumber: input.IDProofNumber,
		Amount:        finalAmount,
	})
	if err != nil {
		return nil, err
	}

	status, bookingType := DeriveStatus(input.CheckInDate, now)

	booking := builders.NewBookingBuilder().
		WithBookingNumber(GenerateBookingNumber(now)).
		WithGuest(input.GuestName, input.GuestEmail, input.GuestPhone, input.GuestAddress, input.IDProofType, input.IDProofNumber).
		WithRoom(input.RoomType, input.RoomNumber, input.RoomRate).
		WithStay(input.CheckInDate, input.CheckOutDate, nights, input.NumberOfGuests).
		WithAdditionalGuests(input.Guests).
		WithStatus(status, bookingType).
		WithLoyaltyDiscount(discountPercent, discountAmount).
		WithCustomer(customer.ID).
		WithHotel(s.hotel).
		WithAdmin(input.AdminID).
		Build()

	if status == constants.BookingStatusCheckedIn {
		booking.ActualCheckInTime = &now
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}

	s.logger.Info("booking %d created for %s, room %s", booking.BookingNumber, booking.GuestName, booking.RoomNumber)
	return &booking, nil
}

// CheckIn moves a confirmed reservation into the hotel and stamps the
// arrival time.
func (s *BookingService) CheckIn(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		return nil, err
	}
	if booking.Status != constants.BookingStatusConfirmed {
		return nil, fmt.Errorf("booking %d is not awaiting check-in", booking.BookingNumber)
	}

	now := time.Now()
	booking.Status = constants.BookingStatusCheckedIn
	booking.ActualCheckInTime = &now
	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// CheckoutInput carries the staff-entered figures for settlement. The
// nights value is billed as entered, even when it disagrees with the
// booked dates.
type CheckoutInput struct {
	Nights             int
	AdditionalCharges  float64
	AdditionalDesc     string
	Discount           float64
	DiscountDesc       string
	PaymentMethod      int
	ActualCheckOutDate string
}

// Checkout settles a booking: computes the bill from the staff-entered
// figures, issues an invoice number and marks the stay checked out and
// paid. An unknown id yields (nil, nil).
func (s *BookingService) Checkout(id uint, input CheckoutInput) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	now := time.Now()
	nights := input.Nights
	if nights < 1 {
		nights = NightsBetween(booking.CheckInDate, booking.EffectiveCheckOutDate())
	}

	booking.Bill = ComputeBill(booking.RoomRate, nights, input.AdditionalCharges, input.Discount)
	booking.Nights = nights
	booking.AdditionalChargesDesc = input.AdditionalDesc
	booking.DiscountDesc = input.DiscountDesc
	booking.Status = constants.BookingStatusCheckedOut
	booking.CheckedOutAt = &now
	booking.PaymentStatus = constants.PaymentStatusPaid
	booking.PaymentMethod = &input.PaymentMethod
	booking.InvoiceNumber = fmt.Sprintf("INV-%d", now.UnixMilli())
	booking.InvoiceDate = &now
	if input.ActualCheckOutDate != "" {
		booking.ActualCheckOutDate = input.ActualCheckOutDate
	} else {
		booking.ActualCheckOutDate = now.Format(constants.DateLayout)
	}

	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}

	s.logger.Info("booking %d checked out, invoice %s, total %.2f", booking.BookingNumber, booking.InvoiceNumber, booking.Bill.GrandTotal)
	return &booking, nil
}

// Delete removes a booking outright. Customer aggregates accrued at
// creation are intentionally left in place.
func (s *BookingService) Delete(id uint) error {
	return s.db.Delete(&models.Booking{}, id).Error
}

// UpdatePayment changes the payment status and method on a booking
func (s *BookingService) UpdatePayment(id uint, paymentStatus int, paymentMethod *int) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		return nil, err
	}
	booking.PaymentStatus = paymentStatus
	if paymentMethod != nil {
		booking.PaymentMethod = paymentMethod
	}
	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// ByID fetches one booking
func (s *BookingService) ByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// ByBookingNumber fetches the most recent booking carrying a reference
// number.
func (s *BookingService) ByBookingNumber(number int64) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Where("booking_number = ?", number).Order("created_at DESC").First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// All lists the ledger, newest first
func (s *BookingService) All() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// Active lists guests currently in the hotel
func (s *BookingService) Active() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("status = ?", constants.BookingStatusCheckedIn).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// Confirmed lists reservations not yet arrived
func (s *BookingService) Confirmed() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("status = ?", constants.BookingStatusConfirmed).Order("check_in_date").Find(&bookings).Error
	return bookings, err
}

// Invoiced lists checked-out bookings that carry an invoice, newest
// invoice first.
func (s *BookingService) Invoiced() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Where("status = ? AND invoice_number <> ''", constants.BookingStatusCheckedOut).
		Order("invoice_date DESC").
		Find(&bookings).Error
	return bookings, err
}

// TodaysArrivals lists confirmed reservations due in today
func (s *BookingService) TodaysArrivals(now time.Time) ([]models.Booking, error) {
	today := now.Format(constants.DateLayout)
	var bookings []models.Booking
	err := s.db.
		Where("status = ? AND check_in_date = ?", constants.BookingStatusConfirmed, today).
		Find(&bookings).Error
	return bookings, err
}

// TodaysDepartures lists in-house guests whose stay ends today
func (s *BookingService) TodaysDepartures(now time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("status = ?", constants.BookingStatusCheckedIn).Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	today := now.Format(constants.DateLayout)
	departures := make([]models.Booking, 0)
	for _, b := range bookings {
		if b.EffectiveCheckOutDate() == today {
			departures = append(departures, b)
		}
	}
	return departures, nil
}

// AllForStaff lists the ledger scoped to the staff member's owning
// account: admins see their own bookings, receptionists see their
// admin's.
func (s *BookingService) AllForStaff(staffID uint, role int) ([]models.Booking, error) {
	adminID := staffID
	if role == models.StaffRoleReceptionist {
		var staff models.Staff
		if err := s.db.First(&staff, staffID).Error; err != nil {
			return nil, err
		}
		if staff.AdminID != nil {
			adminID = *staff.AdminID
		}
	}

	var bookings []models.Booking
	err := s.db.Where("admin_id = ?", adminID).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// RevenueByCreatedRange sums billed revenue for bookings created in
// [from, to]. Bookings without a bill contribute zero.
func (s *BookingService) RevenueByCreatedRange(from, to string) (float64, error) {
	bookings, err := s.ByCreatedRange(from, to)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for i := range bookings {
		if bookings[i].HasBill() {
			total += bookings[i].Bill.GrandTotal
		}
	}
	return total, nil
}

// ByCreatedRange lists bookings created within [from, to], both ends
// inclusive to the day.
func (s *BookingService) ByCreatedRange(from, to string) ([]models.Booking, error) {
	start, err := time.Parse(constants.DateLayout, from)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(constants.DateLayout, to)
	if err != nil {
		return nil, err
	}
	end = end.AddDate(0, 0, 1)

	var bookings []models.Booking
	err = s.db.
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}
