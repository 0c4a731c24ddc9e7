package routes

import (
	"encoding/json"

	"hoteldesk/controllers"
	middlewares "hoteldesk/middleware"
	"hoteldesk/models"
	"hoteldesk/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services bundles the domain services the route table wires
// controllers from.
type Services struct {
	Bookings  *services.BookingService
	Rooms     *services.RoomService
	Customers *services.CustomerService
	Analytics *services.AnalyticsService
}

func SetupRoutes(router *gin.Engine, svcs Services, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	bookingController := controllers.NewBookingController(svcs.Bookings, redisCli, m)
	roomController := controllers.NewRoomController(svcs.Rooms, redisCli, cld)
	customerController := controllers.NewCustomerController(svcs.Customers, redisCli, cld)
	analyticsController := controllers.NewAnalyticsController(svcs.Analytics, svcs.Bookings, svcs.Rooms, svcs.Customers, redisCli)
	authController := controllers.NewAuthController(db)

	router.Use(middlewares.SessionMiddleware())
	router.Use(middlewares.RequestLogger())

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authController.Login)
	v1.DELETE("/auth/logout", authController.Logout)
	v1.POST("/auth/register", middlewares.AuthMiddleware(models.StaffRoleAdmin), authController.Register)
	v1.POST("/auth/google", authController.AuthGoogle)

	v1.GET("/bookings", middlewares.AuthMiddleware(), bookingController.GetBookings)
	v1.POST("/bookings", middlewares.AuthMiddleware(), bookingController.CreateBooking)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(), bookingController.GetBookingDetail)
	v1.PUT("/bookings/:id/checkin", middlewares.AuthMiddleware(), bookingController.CheckInBooking)
	v1.PUT("/bookings/:id/checkout", middlewares.AuthMiddleware(), bookingController.CheckoutBooking)
	v1.PUT("/bookings/:id/payment", middlewares.AuthMiddleware(), bookingController.UpdatePaymentStatus)
	v1.DELETE("/bookings/:id", middlewares.AuthMiddleware(models.StaffRoleAdmin), bookingController.DeleteBooking)
	v1.GET("/bookings/active", middlewares.AuthMiddleware(), bookingController.GetActiveBookings)
	v1.GET("/bookings/confirmed", middlewares.AuthMiddleware(), bookingController.GetConfirmedBookings)
	v1.GET("/bookings/arrivals", middlewares.AuthMiddleware(), bookingController.GetTodaysArrivals)
	v1.GET("/bookings/departures", middlewares.AuthMiddleware(), bookingController.GetTodaysDepartures)

	v1.GET("/invoices", middlewares.AuthMiddleware(), bookingController.GetInvoices)
	v1.GET("/invoices/:id", middlewares.AuthMiddleware(), bookingController.GetDetailInvoice)

	v1.GET("/rooms", roomController.GetRooms)
	v1.GET("/rooms/grouped", roomController.GetRoomsGrouped)
	v1.GET("/rooms/available", roomController.GetAvailableRooms)
	v1.GET("/rooms/occupancy", roomController.GetOccupancy)
	v1.POST("/rooms", middlewares.AuthMiddleware(models.StaffRoleAdmin), roomController.CreateRoom)
	v1.PUT("/rooms/:roomNumber/status", middlewares.AuthMiddleware(), roomController.ChangeRoomStatus)
	v1.PUT("/rooms/:roomNumber", middlewares.AuthMiddleware(models.StaffRoleAdmin), roomController.UpdateRoom)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(models.StaffRoleAdmin), roomController.DeleteRoom)
	v1.POST("/rooms/img/upload", middlewares.AuthMiddleware(models.StaffRoleAdmin), roomController.UploadRoomImage)

	v1.GET("/customers", middlewares.AuthMiddleware(), customerController.GetCustomers)
	v1.GET("/customers/search", middlewares.AuthMiddleware(), customerController.SearchCustomers)
	v1.GET("/customers/lookup", middlewares.AuthMiddleware(), customerController.LookupCustomer)
	v1.GET("/customers/top", middlewares.AuthMiddleware(), customerController.GetTopCustomers)
	v1.GET("/customers/stats", middlewares.AuthMiddleware(), customerController.GetCustomerStats)
	v1.GET("/customers/:id", middlewares.AuthMiddleware(), customerController.GetCustomerDetail)
	v1.PUT("/customers/:id/preferences", middlewares.AuthMiddleware(), customerController.UpdateCustomerPreference)
	v1.DELETE("/customers/:id", middlewares.AuthMiddleware(models.StaffRoleAdmin), customerController.DeleteCustomer)
	v1.POST("/customers/id-proof/upload", middlewares.AuthMiddleware(), customerController.UploadIDProof)

	v1.GET("/analytics/summary", middlewares.AuthMiddleware(), analyticsController.GetSummary)
	v1.GET("/analytics/revenue-by-type", middlewares.AuthMiddleware(), analyticsController.GetRevenueByRoomType)
	v1.GET("/analytics/revenue", middlewares.AuthMiddleware(), analyticsController.GetRevenue)
	v1.GET("/analytics/monthly-trend", middlewares.AuthMiddleware(), analyticsController.GetMonthlyTrend)
	v1.GET("/analytics/daily-occupancy", middlewares.AuthMiddleware(), analyticsController.GetDailyOccupancy)
	v1.GET("/dashboard", middlewares.AuthMiddleware(), analyticsController.GetDashboard)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message, _ := json.Marshal(gin.H{"event": "test", "mess": "Broadcast from backend"})
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

}
