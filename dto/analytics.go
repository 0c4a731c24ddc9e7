package dto

import "hoteldesk/services"

// AnalyticsRangeRequest bounds a reporting query by creation date
type AnalyticsRangeRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// DashboardResponse is the single front-desk overview payload
type DashboardResponse struct {
	Occupancy       services.OccupancyStats    `json:"occupancy"`
	TodaysArrivals  int                        `json:"todaysArrivals"`
	TodaysCheckouts int                        `json:"todaysCheckouts"`
	ActiveGuests    int                        `json:"activeGuests"`
	Customers       services.CustomerStats     `json:"customers"`
	MonthlyTrend    []services.MonthRevenue    `json:"monthlyTrend"`
	DailyOccupancy  []services.DayOccupancy    `json:"dailyOccupancy"`
	RevenueByType   []services.RoomTypeRevenue `json:"revenueByRoomType"`
}
