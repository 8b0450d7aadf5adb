// File: roomly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"roomly/config"
	"roomly/handlers"
	"roomly/routes"
	"roomly/services/admin"
	"roomly/services/booking"
	"roomly/upstream"
	"roomly/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.InitAuthCache()
	utils.RegisterValidations()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Upstream clients.
	reservationClient := upstream.NewClient(
		config.AppConfig.ReservationAPIURL,
		config.AppConfig.ReservationAPITimeout,
		logger,
	)
	roomClient := upstream.NewRoomClient(reservationClient)

	// Services.
	bookingService := &booking.DefaultBookingSessionService{
		Reservations: reservationClient,
		Rooms:        roomClient,
		Store:        booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		SessionTTL:   config.AppConfig.BookingSessionTTL,
		Logger:       logger,
	}
	adminService := &admin.DefaultAdminService{
		API:    reservationClient,
		Logger: logger,
	}

	handlers.BookingService = bookingService
	handlers.AdminSvc = adminService
	handlers.Reservations = reservationClient
	handlers.Rooms = roomClient

	routes.RegisterRoutes(router)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetAuthCacheClient()},
		config.AppConfig.ReservationAPIURL,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
