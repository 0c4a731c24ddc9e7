package services

import (
	"math"
	"time"

	"hoteldesk/constants"
	"hoteldesk/models"
	"hoteldesk/services/logger"

	"gorm.io/gorm"
)

// AnalyticsService derives the reporting views from the booking ledger.
// All revenue figures come from stored bills only; a booking without an
// invoice contributes zero.
type AnalyticsService struct {
	db     *gorm.DB
	logger logger.Logger
}

type AnalyticsServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAnalyticsService(opts AnalyticsServiceOptions) *AnalyticsService {
	return &AnalyticsService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// PeriodSummary aggregates a set of bookings into headline figures.
type PeriodSummary struct {
	TotalBookings   int     `json:"totalBookings"`
	CheckedIn       int     `json:"checkedIn"`
	CheckedOut      int     `json:"checkedOut"`
	Confirmed       int     `json:"confirmed"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalTax        float64 `json:"totalTax"`
	AvgBookingValue float64 `json:"avgBookingValue"`
	AvgStayNights   float64 `json:"avgStayNights"`
}

func ComputePeriodSummary(bookings []models.Booking) PeriodSummary {
	summary := PeriodSummary{TotalBookings: len(bookings)}
	nightsTotal := 0
	for i := range bookings {
		b := &bookings[i]
		switch b.Status {
		case constants.BookingStatusCheckedIn:
			summary.CheckedIn++
		case constants.BookingStatusCheckedOut:
			summary.CheckedOut++
			nights := b.Nights
			if nights < 1 {
				nights = 1
			}
			nightsTotal += nights
		case constants.BookingStatusConfirmed:
			summary.Confirmed++
		}
		if b.HasBill() {
			summary.TotalRevenue += b.Bill.GrandTotal
			summary.TotalTax += b.Bill.TotalTax
		}
	}
	// Averaged over every booking in range, billed or not.
	if summary.TotalBookings > 0 {
		summary.AvgBookingValue = summary.TotalRevenue / float64(summary.TotalBookings)
	}
	if summary.CheckedOut > 0 {
		summary.AvgStayNights = float64(nightsTotal) / float64(summary.CheckedOut)
	}
	return summary
}

// RoomTypeRevenue is one revenue bucket keyed by room type label.
type RoomTypeRevenue struct {
	RoomType string  `json:"roomType"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// ComputeRevenueByRoomType buckets billed revenue by room type. Types
// are always present in label order so charts stay stable.
func ComputeRevenueByRoomType(bookings []models.Booking) []RoomTypeRevenue {
	order := []int{constants.RoomTypeStandard, constants.RoomTypeDeluxe, constants.RoomTypeSuite}
	buckets := make(map[int]*RoomTypeRevenue, len(order))
	result := make([]RoomTypeRevenue, len(order))
	for i, roomType := range order {
		result[i] = RoomTypeRevenue{RoomType: constants.RoomTypeLabel(roomType)}
		buckets[roomType] = &result[i]
	}

	for i := range bookings {
		b := &bookings[i]
		if !b.HasBill() {
			continue
		}
		bucket, ok := buckets[b.RoomType]
		if !ok {
			continue
		}
		bucket.Bookings++
		bucket.Revenue += b.Bill.GrandTotal
	}
	return result
}

// MonthRevenue is one month in the revenue trend.
type MonthRevenue struct {
	Month    string  `json:"month"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// ComputeMonthlyTrend buckets the last six calendar months (oldest
// first) by booking creation date.
func ComputeMonthlyTrend(bookings []models.Booking, now time.Time) []MonthRevenue {
	const months = 6

	trend := make([]MonthRevenue, months)
	index := make(map[string]*MonthRevenue, months)
	for i := 0; i < months; i++ {
		month := now.AddDate(0, i-(months-1), 0)
		key := month.Format("2006-01")
		trend[i] = MonthRevenue{Month: month.Format("Jan 2006")}
		index[key] = &trend[i]
	}

	for i := range bookings {
		b := &bookings[i]
		bucket, ok := index[b.CreatedAt.Format("2006-01")]
		if !ok {
			continue
		}
		bucket.Bookings++
		if b.HasBill() {
			bucket.Revenue += b.Bill.GrandTotal
		}
	}
	return trend
}

// DayOccupancy is one day in the occupancy trend.
type DayOccupancy struct {
	Date          string  `json:"date"`
	Bookings      int     `json:"bookings"`
	OccupancyRate float64 `json:"occupancyRate"`
}

// bookingCoversDay reports whether a stay spans the given calendar day,
// checkout day included. Checked-out stays still count for the days
// they covered.
func bookingCoversDay(b *models.Booking, day string) bool {
	return b.CheckInDate <= day && day <= b.EffectiveCheckOutDate()
}

// ComputeDailyOccupancy walks the last seven days (oldest first) and
// counts the bookings whose stay spans each day.
func ComputeDailyOccupancy(bookings []models.Booking, totalRooms int, now time.Time) []DayOccupancy {
	const days = 7

	trend := make([]DayOccupancy, days)
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, i-(days-1)).Format(constants.DateLayout)
		covering := 0
		for j := range bookings {
			if bookingCoversDay(&bookings[j], day) {
				covering++
			}
		}
		entry := DayOccupancy{Date: day, Bookings: covering}
		if totalRooms > 0 {
			rate := float64(covering) / float64(totalRooms) * 100
			entry.OccupancyRate = math.Round(rate*10) / 10
		}
		trend[i] = entry
	}
	return trend
}

// Summary aggregates bookings created in [from, to], inclusive to the
// day.
func (s *AnalyticsService) Summary(from, to string) (PeriodSummary, error) {
	bookings, err := s.bookingsCreatedBetween(from, to)
	if err != nil {
		return PeriodSummary{}, err
	}
	return ComputePeriodSummary(bookings), nil
}

// RevenueByRoomType buckets billed revenue in [from, to] by room type
func (s *AnalyticsService) RevenueByRoomType(from, to string) ([]RoomTypeRevenue, error) {
	bookings, err := s.bookingsCreatedBetween(from, to)
	if err != nil {
		return nil, err
	}
	return ComputeRevenueByRoomType(bookings), nil
}

// MonthlyTrend reports the last six months of bookings and revenue
func (s *AnalyticsService) MonthlyTrend(now time.Time) ([]MonthRevenue, error) {
	start := now.AddDate(0, -6, 0)
	var bookings []models.Booking
	if err := s.db.Where("created_at >= ?", start).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return ComputeMonthlyTrend(bookings, now), nil
}

// DailyOccupancy reports room occupancy over the last seven days
func (s *AnalyticsService) DailyOccupancy(now time.Time) ([]DayOccupancy, error) {
	var totalRooms int64
	if err := s.db.Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		return nil, err
	}

	windowStart := now.AddDate(0, 0, -7).Format(constants.DateLayout)
	var bookings []models.Booking
	err := s.db.
		Where("check_in_date <= ? AND (check_out_date >= ? OR actual_check_out_date >= ?)",
			now.Format(constants.DateLayout), windowStart, windowStart).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	return ComputeDailyOccupancy(bookings, int(totalRooms), now), nil
}

func (s *AnalyticsService) bookingsCreatedBetween(from, to string) ([]models.Booking, error) {
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
	err = s.db.Where("created_at >= ? AND created_at < ?", start, end).Find(&bookings).Error
	return bookings, err
}
