package controllers

import (
	"context"
	"log"
	"time"

	"hoteldesk/constants"
	"hoteldesk/dto"
	"hoteldesk/response"
	"hoteldesk/services"
	"hoteldesk/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const dashboardCacheKey = "dashboard:stats"

type AnalyticsController struct {
	Analytics *services.AnalyticsService
	Bookings  *services.BookingService
	Rooms     *services.RoomService
	Customers *services.CustomerService
	Redis     *redis.Client
}

func NewAnalyticsController(analytics *services.AnalyticsService, bookings *services.BookingService, rooms *services.RoomService, customers *services.CustomerService, redisCli *redis.Client) AnalyticsController {
	return AnalyticsController{
		Analytics: analytics,
		Bookings:  bookings,
		Rooms:     rooms,
		Customers: customers,
		Redis:     redisCli,
	}
}

// GetSummary reports headline figures for a creation-date range
func (ac AnalyticsController) GetSummary(c *gin.Context) {
	var req dto.AnalyticsRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidateDateRange(req.From, req.To); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	summary, err := ac.Analytics.Summary(req.From, req.To)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, summary)
}

// GetRevenueByRoomType buckets billed revenue by room type
func (ac AnalyticsController) GetRevenueByRoomType(c *gin.Context) {
	var req dto.AnalyticsRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidateDateRange(req.From, req.To); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	revenue, err := ac.Analytics.RevenueByRoomType(req.From, req.To)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, revenue)
}

// GetRevenue reports total billed revenue for a creation-date range
func (ac AnalyticsController) GetRevenue(c *gin.Context) {
	var req dto.AnalyticsRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidateDateRange(req.From, req.To); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	revenue, err := ac.Bookings.RevenueByCreatedRange(req.From, req.To)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, gin.H{"from": req.From, "to": req.To, "totalRevenue": revenue})
}

// GetMonthlyTrend reports the last six months of bookings and revenue
func (ac AnalyticsController) GetMonthlyTrend(c *gin.Context) {
	trend, err := ac.Analytics.MonthlyTrend(time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, trend)
}

// GetDailyOccupancy reports room occupancy over the last seven days
func (ac AnalyticsController) GetDailyOccupancy(c *gin.Context) {
	trend, err := ac.Analytics.DailyOccupancy(time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, trend)
}

// GetDashboard assembles the single front-desk overview payload. It is
// cached briefly; booking writes drop the cache.
func (ac AnalyticsController) GetDashboard(c *gin.Context) {
	ctx := context.Background()

	var cached dto.DashboardResponse
	if err := services.GetFromRedis(ctx, ac.Redis, dashboardCacheKey, &cached); err == nil && cached.Occupancy.Total > 0 {
		response.Success(c, cached)
		return
	}

	now := time.Now()

	occupancy, err := ac.Rooms.Occupancy()
	if err != nil {
		response.ServerError(c)
		return
	}

	arrivals, err := ac.Bookings.TodaysArrivals(now)
	if err != nil {
		response.ServerError(c)
		return
	}

	departures, err := ac.Bookings.TodaysDepartures(now)
	if err != nil {
		response.ServerError(c)
		return
	}

	active, err := ac.Bookings.Active()
	if err != nil {
		response.ServerError(c)
		return
	}

	customerStats, err := ac.Customers.Stats()
	if err != nil {
		response.ServerError(c)
		return
	}

	monthlyTrend, err := ac.Analytics.MonthlyTrend(now)
	if err != nil {
		response.ServerError(c)
		return
	}

	dailyOccupancy, err := ac.Analytics.DailyOccupancy(now)
	if err != nil {
		response.ServerError(c)
		return
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	revenueByType, err := ac.Analytics.RevenueByRoomType(
		monthStart.Format(constants.DateLayout), now.Format(constants.DateLayout))
	if err != nil {
		response.ServerError(c)
		return
	}

	dashboard := dto.DashboardResponse{
		Occupancy:       occupancy,
		TodaysArrivals:  len(arrivals),
		TodaysCheckouts: len(departures),
		ActiveGuests:    len(active),
		Customers:       customerStats,
		MonthlyTrend:    monthlyTrend,
		DailyOccupancy:  dailyOccupancy,
		RevenueByType:   revenueByType,
	}

	if err := services.SetToRedis(ctx, ac.Redis, dashboardCacheKey, dashboard, time.Minute); err != nil {
		log.Printf("Error caching dashboard: %v", err)
	}

	response.Success(c, dashboard)
}
