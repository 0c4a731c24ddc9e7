package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"hoteldesk/constants"
	"hoteldesk/dto"
	"hoteldesk/models"
	"hoteldesk/response"
	"hoteldesk/services"
	"hoteldesk/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const bookingsCacheKey = "bookings:all"

type BookingController struct {
	Bookings *services.BookingService
	Redis    *redis.Client
	Melody   *melody.Melody
}

func NewBookingController(bookings *services.BookingService, redisCli *redis.Client, m *melody.Melody) BookingController {
	return BookingController{
		Bookings: bookings,
		Redis:    redisCli,
		Melody:   m,
	}
}

func convertToBookingResponse(b models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:                    b.ID,
		BookingNumber:         b.BookingNumber,
		CustomerID:            b.CustomerID,
		GuestName:             b.GuestName,
		GuestEmail:            b.GuestEmail,
		GuestPhone:            b.GuestPhone,
		RoomType:              constants.RoomTypeLabel(b.RoomType),
		RoomNumber:            b.RoomNumber,
		RoomRate:              b.RoomRate,
		CheckInDate:           b.CheckInDate,
		CheckOutDate:          b.CheckOutDate,
		NumberOfGuests:        b.NumberOfGuests,
		Status:                b.Status,
		BookingType:           b.BookingType,
		PaymentStatus:         b.PaymentStatus,
		PaymentMethod:         b.PaymentMethod,
		LoyaltyDiscount:       b.LoyaltyDiscount,
		LoyaltyDiscountAmount: b.LoyaltyDiscountAmount,
		InvoiceNumber:         b.InvoiceNumber,
		CreatedAt:             b.CreatedAt,
	}
	if b.HasBill() {
		bill := b.Bill
		resp.Bill = &bill
	}
	return resp
}

func convertToInvoiceResponse(b models.Booking) dto.InvoiceResponse {
	invoiceDate := ""
	if b.InvoiceDate != nil {
		invoiceDate = b.InvoiceDate.Format(constants.DateLayout)
	}
	return dto.InvoiceResponse{
		InvoiceNumber: b.InvoiceNumber,
		InvoiceDate:   invoiceDate,
		BookingNumber: b.BookingNumber,
		GuestName:     b.GuestName,
		GuestPhone:    b.GuestPhone,
		GuestAddress:  b.GuestAddress,
		RoomNumber:    b.RoomNumber,
		RoomType:      constants.RoomTypeLabel(b.RoomType),
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.EffectiveCheckOutDate(),
		Nights:        b.Nights,
		RoomRate:      b.RoomRate,
		Bill:          b.Bill,
		PaymentMethod: b.PaymentMethod,
		HotelName:     b.HotelName,
		HotelAddress:  b.HotelAddress,
		HotelPhone:    b.HotelPhone,
		HotelEmail:    b.HotelEmail,
	}
}

// invalidateBookingCaches drops every booking list cached in Redis,
// along with the dashboard snapshot built from them.
func (bc BookingController) invalidateBookingCaches(ctx context.Context) {
	if err := services.DeleteKeysByPattern(ctx, bc.Redis, "bookings:*"); err != nil {
		log.Printf("Error invalidating booking caches: %v", err)
	}
	if err := services.DeleteKeysByPattern(ctx, bc.Redis, "dashboard:*"); err != nil {
		log.Printf("Error invalidating dashboard cache: %v", err)
	}
}

// broadcast pushes a front-desk event to connected dashboards
func (bc BookingController) broadcast(event string, booking *models.Booking) {
	if bc.Melody == nil {
		return
	}
	msg, err := json.Marshal(gin.H{
		"event":         event,
		"bookingNumber": booking.BookingNumber,
		"roomNumber":    booking.RoomNumber,
		"status":        booking.Status,
	})
	if err != nil {
		return
	}
	bc.Melody.Broadcast(msg)
}

// GetBookings lists the ledger with in-memory filters over a cached
// snapshot, the same way every list endpoint here works. Reads are
// scoped to the staff member's owning account.
func (bc BookingController) GetBookings(c *gin.Context) {
	ctx := context.Background()

	staffIDVal, _ := c.Get("staffID")
	staffRoleVal, _ := c.Get("staffRole")
	staffID, _ := staffIDVal.(uint)
	staffRole, _ := staffRoleVal.(int)

	cacheKey := fmt.Sprintf("%s:staff:%d", bookingsCacheKey, staffID)

	var allBookings []models.Booking
	if err := services.GetFromRedis(ctx, bc.Redis, cacheKey, &allBookings); err != nil || len(allBookings) == 0 {
		var dbErr error
		allBookings, dbErr = bc.Bookings.AllForStaff(staffID, staffRole)
		if dbErr != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(ctx, bc.Redis, cacheKey, allBookings, 10*time.Minute); err != nil {
			log.Printf("Error caching bookings: %v", err)
		}
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	phoneFilter := c.Query("phoneNumber")
	statusFilter := c.Query("status")
	typeFilter := c.Query("bookingType")
	paymentFilter := c.Query("paymentStatus")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	filtered := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(booking.GuestName), strings.ToLower(decodedName)) {
				continue
			}
		}
		if phoneFilter != "" && !strings.Contains(booking.GuestPhone, phoneFilter) {
			continue
		}
		if statusFilter != "" {
			parsedStatus, err := strconv.Atoi(statusFilter)
			if err == nil && booking.Status != parsedStatus {
				continue
			}
		}
		if typeFilter != "" {
			parsedType, err := strconv.Atoi(typeFilter)
			if err == nil && booking.BookingType != parsedType {
				continue
			}
		}
		if paymentFilter != "" {
			parsedPayment, err := strconv.Atoi(paymentFilter)
			if err == nil && booking.PaymentStatus != parsedPayment {
				continue
			}
		}
		if fromDateStr != "" {
			fromDate, err := time.Parse(constants.DateLayout, fromDateStr)
			if err != nil {
				response.BadRequest(c, "Invalid fromDate")
				return
			}
			if booking.CreatedAt.Before(fromDate) {
				continue
			}
		}
		if toDateStr != "" {
			toDate, err := time.Parse(constants.DateLayout, toDateStr)
			if err != nil {
				response.BadRequest(c, "Invalid toDate")
				return
			}
			if booking.CreatedAt.After(toDate.AddDate(0, 0, 1)) {
				continue
			}
		}
		filtered = append(filtered, booking)
	}

	totalFiltered := len(filtered)

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filtered = []models.Booking{}
	} else if end > totalFiltered {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(filtered))
	for _, booking := range filtered {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, totalFiltered)
}

// GetBookingDetail returns one booking by id
func (bc BookingController) GetBookingDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	booking, err := bc.Bookings.ByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

// CreateBooking records a new stay from the check-in form
func (bc BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateBookingRequest(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	staffID, _ := c.Get("staffID")
	adminID, _ := staffID.(uint)

	booking, err := bc.Bookings.Create(services.CreateBookingInput{
		GuestName:      req.GuestName,
		GuestEmail:     req.GuestEmail,
		GuestPhone:     req.GuestPhone,
		GuestAddress:   req.GuestAddress,
		IDProofType:    req.IDProofType,
		IDProofNumber:  req.IDProofNumber,
		RoomType:       req.RoomType,
		RoomNumber:     req.RoomNumber,
		RoomRate:       req.RoomRate,
		CheckInDate:    req.CheckInDate,
		CheckOutDate:   req.CheckOutDate,
		NumberOfGuests: req.NumberOfGuests,
		Guests:         req.Guests,
		AdminID:        adminID,
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	ctx := context.Background()
	bc.invalidateBookingCaches(ctx)
	// Creation also bumps the guest's loyalty aggregates.
	if err := services.DeleteKeysByPattern(ctx, bc.Redis, "customers:*"); err != nil {
		log.Printf("Error invalidating customer caches: %v", err)
	}
	bc.broadcast("booking_created", booking)

	response.Success(c, convertToBookingResponse(*booking))
}

// CheckInBooking moves a confirmed reservation to checked-in
func (bc BookingController) CheckInBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	booking, err := bc.Bookings.CheckIn(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	bc.invalidateBookingCaches(context.Background())
	bc.broadcast("booking_checked_in", booking)

	response.Success(c, convertToBookingResponse(*booking))
}

// CheckoutBooking settles a stay and returns the invoice
func (bc BookingController) CheckoutBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateCheckoutRequest(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	booking, err := bc.Bookings.Checkout(uint(id), services.CheckoutInput{
		Nights:             req.Nights,
		AdditionalCharges:  req.AdditionalCharges,
		AdditionalDesc:     req.AdditionalDesc,
		Discount:           req.Discount,
		DiscountDesc:       req.DiscountDesc,
		PaymentMethod:      req.PaymentMethod,
		ActualCheckOutDate: req.ActualCheckOutDate,
	})
	if err != nil {
		response.ServerError(c)
		return
	}
	if booking == nil {
		response.NotFound(c)
		return
	}

	// The invoice email never blocks the checkout.
	go func(b models.Booking) {
		if err := services.SendInvoiceEmail(&b); err != nil {
			log.Printf("Error sending invoice email for booking %d: %v", b.BookingNumber, err)
		}
	}(*booking)

	bc.invalidateBookingCaches(context.Background())
	bc.broadcast("booking_checked_out", booking)

	response.Success(c, convertToInvoiceResponse(*booking))
}

// DeleteBooking removes a booking from the ledger
func (bc BookingController) DeleteBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	if err := bc.Bookings.Delete(uint(id)); err != nil {
		response.ServerError(c)
		return
	}

	bc.invalidateBookingCaches(context.Background())

	response.Success(c, nil)
}

// UpdatePaymentStatus changes payment fields on a booking
func (bc BookingController) UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var req dto.PaymentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := bc.Bookings.UpdatePayment(uint(id), req.PaymentStatus, req.PaymentMethod)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	bc.invalidateBookingCaches(context.Background())

	response.Success(c, convertToBookingResponse(*booking))
}

// GetActiveBookings lists guests currently in the hotel
func (bc BookingController) GetActiveBookings(c *gin.Context) {
	bookings, err := bc.Bookings.Active()
	if err != nil {
		response.ServerError(c)
		return
	}
	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}
	response.SuccessWithTotal(c, bookingResponses, len(bookingResponses))
}

// GetConfirmedBookings lists reservations not yet arrived
func (bc BookingController) GetConfirmedBookings(c *gin.Context) {
	bookings, err := bc.Bookings.Confirmed()
	if err != nil {
		response.ServerError(c)
		return
	}
	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}
	response.SuccessWithTotal(c, bookingResponses, len(bookingResponses))
}

// GetTodaysArrivals lists confirmed reservations due in today
func (bc BookingController) GetTodaysArrivals(c *gin.Context) {
	bookings, err := bc.Bookings.TodaysArrivals(time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}
	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}
	response.SuccessWithTotal(c, bookingResponses, len(bookingResponses))
}

// GetTodaysDepartures lists in-house guests due out today
func (bc BookingController) GetTodaysDepartures(c *gin.Context) {
	bookings, err := bc.Bookings.TodaysDepartures(time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}
	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}
	response.SuccessWithTotal(c, bookingResponses, len(bookingResponses))
}

// GetInvoices lists issued invoices, newest first
func (bc BookingController) GetInvoices(c *gin.Context) {
	bookings, err := bc.Bookings.Invoiced()
	if err != nil {
		response.ServerError(c)
		return
	}
	invoices := make([]dto.InvoiceResponse, 0, len(bookings))
	for _, booking := range bookings {
		invoices = append(invoices, convertToInvoiceResponse(booking))
	}
	response.SuccessWithTotal(c, invoices, len(invoices))
}

// GetDetailInvoice returns the invoice view of one booking
func (bc BookingController) GetDetailInvoice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	booking, err := bc.Bookings.ByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if !booking.HasBill() {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToInvoiceResponse(*booking))
}
