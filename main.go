package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"villamar/config"
	"villamar/database"
	bookingRepo "villamar/database/repository/booking"
	"villamar/handlers"
	"villamar/middleware"
	"villamar/routes"
	"villamar/services/admin"
	"villamar/services/booking"
	"villamar/services/notification"
	"villamar/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	repo := bookingRepo.NewMongoBookingRepo()

	// services.
	mailer := notification.NewSMTPMailer()
	bookingService := &booking.DefaultBookingService{
		Repo:        repo,
		Notifier:    mailer,
		NightlyRate: config.AppConfig.NightlyRate,
	}
	sessionGate := admin.NewSessionGate()

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	adminHandler := handlers.NewAdminHandler(sessionGate, bookingService, logger)

	// Register routes.
	routes.RegisterRoutes(router, bookingHandler, adminHandler, sessionGate)

	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetSessionCacheClient(), database.MongoClient)

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
