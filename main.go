package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixora/config"
	"fixora/database"
	catalogRepo "fixora/database/repository/catalog"
	userRepoPkg "fixora/database/repository/user"
	vendorRepo "fixora/database/repository/vendor"
	"fixora/handlers"
	"fixora/middleware"
	"fixora/routes"
	"fixora/services/booking"
	"fixora/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware(logger))
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	vendRepo := vendorRepo.NewMongoVendorRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	eligibilityService := &booking.DefaultEligibilityService{
		CatalogRepo:      catRepo,
		VendorRepo:       vendRepo,
		UserRepo:         userRepo,
		Clock:            booking.SystemClock(),
		MaxAdvanceMonths: config.AppConfig.BookingWindowMonths,
	}

	eligibilityHandler := handlers.NewEligibilityHandler(eligibilityService, utils.GetCacheClient())

	// Register routes.
	routes.RegisterRoutes(router, eligibilityHandler)

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
