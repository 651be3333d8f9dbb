// File: slotwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotwise/config"
	"slotwise/cron"
	"slotwise/database"
	bookingRepoPkg "slotwise/database/repository/booking"
	orgRepoPkg "slotwise/database/repository/org"
	scheduleRepoPkg "slotwise/database/repository/schedule"
	"slotwise/handlers"
	"slotwise/middleware"
	"slotwise/routes"
	"slotwise/services/billing"
	"slotwise/services/booking"
	"slotwise/services/calendar"
	"slotwise/services/notification"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	orgRepo := orgRepoPkg.NewMongoOrgRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	ctx := context.Background()
	if err := scheduleRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to create schedule indexes: %v", err)
	}
	if err := bookingRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to create booking indexes: %v", err)
	}

	// services.
	availabilitySvc := &booking.DefaultAvailabilityService{
		OrgRepo:      orgRepo,
		ScheduleRepo: scheduleRepo,
		BookingRepo:  bookingRepo,
		Recurrence:   booking.WeeklyRecurrenceResolver{},
		BusyTimes:    calendar.NewGoogleBusyTimeProvider(),
		CacheClient:  utils.GetCacheClient(),
		CacheTTL:     time.Duration(config.AppConfig.AvailabilityCacheTTLSecs) * time.Second,
	}

	taskQueue := cron.NewTaskQueue()
	defer taskQueue.Close()

	bookingSvc := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		OrgRepo:      orgRepo,
		Availability: availabilitySvc,
		Queue:        taskQueue,
	}

	notifier, err := notification.NewDefaultNotificationService(notification.NewSMTPSender())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	cron.InitBookingWorker(cron.WorkerDeps{
		Bookings: bookingRepo,
		Orgs:     orgRepo,
		Notifier: notifier,
		Invoices: billing.NewStripeInvoiceService(),
	})

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, routes.Handlers{
		Availability: handlers.NewAvailabilityHandler(availabilitySvc),
		Booking:      handlers.NewBookingHandler(bookingSvc),
		Schedule:     handlers.NewScheduleHandler(scheduleRepo),
		Auth:         handlers.NewAuthHandler(orgRepo),
		Org:          handlers.NewOrgHandler(orgRepo),
	})

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("starting server", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	if err := database.MongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Error("failed to disconnect mongo", zap.Error(err))
	}
	logger.Info("server stopped")
}
