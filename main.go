// File: brightwater/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brightwater/config"
	"brightwater/cron"
	"brightwater/database"
	submissionRepo "brightwater/database/repository/submission"
	"brightwater/handlers"
	"brightwater/middleware"
	"brightwater/routes"
	"brightwater/services/intake"
	"brightwater/services/notification"
	"brightwater/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Record store is optional: without it submissions are accepted and
	// notified but not persisted.
	var store submissionRepo.SubmissionRepository
	if err := database.InitDB(); err != nil {
		logger.Warn("main: record store unavailable, running without persistence", zap.Error(err))
	} else {
		store = submissionRepo.NewMongoSubmissionRepo()
	}

	loc, err := time.LoadLocation(config.AppConfig.BusinessTimezone)
	if err != nil {
		logger.Warn("main: invalid business timezone, falling back to UTC",
			zap.String("timezone", config.AppConfig.BusinessTimezone), zap.Error(err))
		loc = time.UTC
	}

	// Notification sender: SMTP when configured, otherwise log-only.
	emailConfigured := config.AppConfig.SMTPHost != ""
	var sender notification.Sender
	if emailConfigured {
		sender = notification.NewSMTPSender(
			config.AppConfig.SMTPHost,
			config.AppConfig.SMTPPort,
			config.AppConfig.SMTPUsername,
			config.AppConfig.SMTPPassword,
			config.AppConfig.SMTPFrom,
		)
	} else {
		logger.Warn("main: SMTP not configured, notifications will be logged only")
		sender = notification.NewConsoleSender(logger)
	}

	// Reminder queue needs Redis; absent Redis just disables reminders.
	var reminders intake.ReminderQueue
	if config.AppConfig.RedisAddr != "" {
		if err := utils.InitCache(); err != nil {
			logger.Warn("main: redis unavailable, booking reminders disabled", zap.Error(err))
		} else {
			redisOpt := asynq.RedisClientOpt{
				Addr:     config.AppConfig.RedisAddr,
				Password: config.AppConfig.RedisPassword,
				DB:       config.AppConfig.RedisQueueDB,
			}
			reminders = cron.NewReminderScheduler(redisOpt, loc)
			cron.InitReminderWorker(sender, config.AppConfig.BusinessEmail, redisOpt)
		}
	}

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	intakeService := &intake.DefaultIntakeService{
		Repo:      store,
		Notifier:  sender,
		Reminders: reminders,
		Config: intake.Config{
			BusinessEmail: config.AppConfig.BusinessEmail,
			BusinessName:  config.AppConfig.BusinessName,
			SiteBaseURL:   config.AppConfig.SiteBaseURL,
			Timezone:      loc,
		},
	}

	intakeHandler := handlers.NewIntakeHandler(intakeService, logger)
	healthHandler := handlers.NewHealthHandler(store, emailConfigured, config.AppConfig.Version)

	handlerBundle := &handlers.HandlerBundle{
		SubmitContactHandler:     intakeHandler.SubmitContactHandler,
		SubmitBookingHandler:     intakeHandler.SubmitBookingHandler,
		HealthCheckHandler:       healthHandler.HealthCheckHandler,
		ReportClientErrorHandler: handlers.ReportClientErrorHandler(logger),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

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
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
