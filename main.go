package main

import (
	"log"
	"net/http"
	"os"

	"hoteldesk/config"
	"hoteldesk/constants"
	"hoteldesk/jobs"
	"hoteldesk/models"
	"hoteldesk/routes"
	"hoteldesk/services"
	"hoteldesk/services/logger"

	"github.com/gin-gonic/gin"
)

func migrateTables(app *config.App) {
	if err := app.DB.AutoMigrate(&models.Room{}, &models.Customer{}, &models.Booking{}, &models.Staff{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	app, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	hotel := constants.HotelFromEnv()

	roomService := services.NewRoomService(services.RoomServiceOptions{
		DB:     app.DB,
		Logger: appLogger,
	})
	customerService := services.NewCustomerService(services.CustomerServiceOptions{
		DB:     app.DB,
		Logger: appLogger,
	})
	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:        app.DB,
		Logger:    appLogger,
		Customers: customerService,
		Hotel:     hotel,
	})
	analyticsService := services.NewAnalyticsService(services.AnalyticsServiceOptions{
		DB:     app.DB,
		Logger: appLogger,
	})

	migrateTables(app)

	if err := roomService.SeedDefaultRooms(); err != nil {
		log.Fatalf("Failed to seed rooms: %v", err)
	}

	maintenance := services.NewMaintenanceService(services.MaintenanceServiceOptions{
		Rooms:     roomService,
		Customers: customerService,
		Logger:    appLogger,
	})
	jobs.SetMaintenanceRunner(maintenance)

	if err := jobs.InitCronJobs(app.Cron, app.Melody); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(app.Router, app.Melody)

	routes.SetupRoutes(app.Router, routes.Services{
		Bookings:  bookingService,
		Rooms:     roomService,
		Customers: customerService,
		Analytics: analyticsService,
	}, app.DB, app.Redis, app.Cloudinary, app.Melody)

	app.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := app.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
