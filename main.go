// File: docta-server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"docta-server/config"
	appcron "docta-server/cron"
	"docta-server/database"
	doctorRepoPkg "docta-server/database/repository/doctor"
	patientRepoPkg "docta-server/database/repository/patient"
	periodRepoPkg "docta-server/database/repository/period"
	ratingRepoPkg "docta-server/database/repository/rating"
	sessionRepoPkg "docta-server/database/repository/session"
	"docta-server/events"
	"docta-server/handlers"
	"docta-server/middleware"
	"docta-server/routes"
	"docta-server/services/doctor"
	"docta-server/services/period"
	"docta-server/services/rating"
	"docta-server/services/session"
	"docta-server/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	patientRepo := patientRepoPkg.NewMongoPatientRepo()
	periodRepo := periodRepoPkg.NewMongoPeriodRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	ratingRepo := ratingRepoPkg.NewMongoRatingRepo()

	for name, ensure := range map[string]func() error{
		"doctors":  doctorRepo.EnsureIndexes,
		"periods":  periodRepo.EnsureIndexes,
		"sessions": sessionRepo.EnsureIndexes,
		"ratings":  ratingRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// Refund event queue.
	publisher := events.NewAsynqPublisher()
	defer publisher.Close()
	go events.MonitorRedisConnection()

	// Services.
	doctorService := &doctor.DefaultDoctorService{Repo: doctorRepo}
	periodService := &period.DefaultPeriodService{
		Repo:       periodRepo,
		DoctorRepo: doctorRepo,
	}
	sessionService := &session.DefaultSessionService{
		Repo:        sessionRepo,
		PeriodRepo:  periodRepo,
		DoctorRepo:  doctorRepo,
		PatientRepo: patientRepo,
		Publisher:   publisher,
	}
	ratingService := &rating.DefaultRatingService{
		Repo:        ratingRepo,
		SessionRepo: sessionRepo,
		DoctorRepo:  doctorRepo,
		PatientRepo: patientRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Period:  handlers.NewPeriodHandler(periodService),
		Session: handlers.NewSessionHandler(sessionService),
		Rating:  handlers.NewRatingHandler(ratingService),
		Doctor:  handlers.NewDoctorHandler(doctorService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the expiry sweeper.
	sweeper := appcron.StartSessionCleanup(sessionRepo)

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

	sweeperCtx := sweeper.Stop()
	<-sweeperCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
