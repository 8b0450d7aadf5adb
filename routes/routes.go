package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"roomly/handlers"
	"roomly/middleware"
	"roomly/utils"
)

// RegisterRoomRoutes registers the room catalogue endpoints. Browsing rooms
// needs no token; managing them is admin-only.
func RegisterRoomRoutes(r *gin.Engine) {
	api := r.Group("/api/rooms")
	{
		api.GET("", handlers.ListRooms)
		api.GET("/:id", handlers.GetRoom)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware())
		protected.POST("", handlers.CreateRoom)
		protected.PUT("/:id", handlers.UpdateRoom)
		protected.DELETE("/:id", handlers.DeleteRoom)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking panel.
func RegisterBookingRoutes(r *gin.Engine) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.POST("/panel", handlers.OpenBookingPanel)
		bookingGroup.POST("/panel/:sessionID/pick", handlers.PickBookingDate)
		bookingGroup.POST("/panel/:sessionID/reset", handlers.ResetBookingSelection)
		bookingGroup.GET("/panel/:sessionID/day-status", handlers.BookingDayStatus)
		bookingGroup.POST("/panel/:sessionID/submit", handlers.SubmitBooking)
		bookingGroup.DELETE("/panel/:sessionID", handlers.CancelBookingPanel)
	}
}

// RegisterUserRoutes registers the caller's own reservation endpoints.
func RegisterUserRoutes(r *gin.Engine) {
	api := r.Group("/api/user")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/reservations", handlers.MyReservations)
		api.DELETE("/reservations/:id", handlers.DeleteMyReservation)
	}
}

// RegisterAdminRoutes sets up endpoints for reservation management.
func RegisterAdminRoutes(r *gin.Engine) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware())
		adminGroup.GET("/reservations", handlers.AdminReservations)
		adminGroup.PUT("/reservations/:id/dates", handlers.AdminUpdateReservationDates)
		adminGroup.PUT("/reservations/:id/status", handlers.AdminUpdateReservationStatus)
		adminGroup.DELETE("/reservations/:id", handlers.AdminDeleteReservation)
		adminGroup.GET("/reservations/history", handlers.AdminReservationHistory)
		adminGroup.GET("/statistics", handlers.AdminStatistics)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterRoomRoutes(r)
	RegisterBookingRoutes(r)
	RegisterUserRoutes(r)
	RegisterAdminRoutes(r)
}
