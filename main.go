// File: kidsbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kidsbook/config"
	"kidsbook/cron"
	"kidsbook/database"
	activityRepoPkg "kidsbook/database/repository/activity"
	childRepoPkg "kidsbook/database/repository/child"
	guardianRepoPkg "kidsbook/database/repository/guardian"
	recordsRepoPkg "kidsbook/database/repository/records"
	"kidsbook/handlers"
	"kidsbook/middleware"
	"kidsbook/routes"
	"kidsbook/services/booking"
	"kidsbook/services/guardian"
	"kidsbook/services/notification"
	"kidsbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitAuthCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	activityRepo := activityRepoPkg.NewMongoActivityRepo()
	childRepo := childRepoPkg.NewMongoChildRepo()
	guardianRepo := guardianRepoPkg.NewMongoGuardianRepo()
	recordsRepo := recordsRepoPkg.NewMongoBookingRecordRepo()

	if err := activityRepoPkg.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure activity indexes: %v", err)
	}

	// services.
	guardianService := &guardian.DefaultGuardianService{
		Repo:     guardianRepo,
		Children: childRepo,
	}

	notificationService, err := notification.NewDefaultNotificationService(guardianRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	reminderScheduler := cron.NewReminderScheduler()
	defer reminderScheduler.Close()
	cron.InitReminderWorker(notificationService)

	bookingService := &booking.DefaultBookingWizardService{
		Sessions:        booking.NewRedisSessionStore(),
		ActivityRepo:    activityRepo,
		ChildRepo:       childRepo,
		GuardianRepo:    guardianRepo,
		RecordsRepo:     recordsRepo,
		NotificationSvc: notificationService,
		Reminders:       reminderScheduler,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	guardianHandler := handlers.NewGuardianHandler(guardianService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GuardianRepo: guardianRepo,

		// Guardian endpoints.
		RegisterGuardianHandler:     guardianHandler.RegisterGuardian,
		AuthenticateGuardianHandler: guardianHandler.AuthenticateGuardian,
		GetGuardianHandler:          guardianHandler.GetGuardian,
		UpdateGuardianHandler:       guardianHandler.UpdateGuardian,
		DeleteGuardianHandler:       guardianHandler.DeleteGuardian,
		ListCreditPacksHandler:      guardianHandler.ListCreditPacks,
		TopUpCreditsHandler:         guardianHandler.TopUpCredits,
		PaymentWebhookHandler:       guardianHandler.PaymentWebhook,

		// Child endpoints.
		AddChildHandler:     guardianHandler.AddChild,
		ListChildrenHandler: guardianHandler.ListChildren,
		UpdateChildHandler:  guardianHandler.UpdateChild,
		RemoveChildHandler:  guardianHandler.RemoveChild,

		// Activity endpoints.
		ListActivitiesHandler: bookingHandler.ListActivities,
		GetActivityHandler:    bookingHandler.GetActivity,

		// Booking wizard endpoints.
		StartWizard:   bookingHandler.StartWizard,
		GetWizard:     bookingHandler.GetWizard,
		ToggleChild:   bookingHandler.ToggleChild,
		SelectSlot:    bookingHandler.SelectSlot,
		AdvanceWizard: bookingHandler.AdvanceWizard,
		ConfirmWizard: bookingHandler.ConfirmWizard,
		CancelWizard:  bookingHandler.CancelWizard,

		// Booking record endpoints.
		ListBookingsHandler:  bookingHandler.ListBookings,
		CancelBookingHandler: bookingHandler.CancelBooking,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
	logger.Info("main: server is shutting down...", zap.String("signal", "received"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
