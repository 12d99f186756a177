package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/app/echo-server/router"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/business/interactions"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/business/recommender"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/business/students"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/business/tutors"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/internal/middleware"
	psqlRepo "github.com/Sushmitaag19/Student-Tutor-Connect-System/internal/repository/postgres"
	redisRepo "github.com/Sushmitaag19/Student-Tutor-Connect-System/internal/repository/redis"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/internal/rest"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/pkg/config"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/pkg/database"
	redisdb "github.com/Sushmitaag19/Student-Tutor-Connect-System/pkg/database/redis"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/pkg/logger"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Student Tutor Connect", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init repo
	tutorRepo := psqlRepo.NewTutorRepository(db)
	studentRepo := psqlRepo.NewStudentRepository(db)
	interactionRepo := psqlRepo.NewInteractionRepository(db)

	// Recommendation response cache is optional; the engine runs without it.
	var recoCache rest.RecommendationCache
	if redisClient, err := redisdb.NewRedisClient(cfg); err != nil {
		logger.Warn("Redis unavailable, recommendation cache disabled", "error", err)
	} else {
		ttl := time.Duration(cfg.Recommender.CacheTTLSeconds) * time.Second
		recoCache = redisRepo.NewRecommendationCache(redisClient, ttl)
	}

	// Engine config: reference parameters with env overrides.
	engineCfg := recommender.DefaultConfig()
	engineCfg.Intercept = cfg.Recommender.Intercept
	engineCfg.WContent = cfg.Recommender.ContentWeight
	engineCfg.WCollaborative = cfg.Recommender.CollabWeight
	if len(cfg.Recommender.Weights) > 0 {
		weights, err := recommender.WeightsFromSlice(cfg.Recommender.Weights)
		if err != nil {
			logger.Fatal("Invalid recommender weights", "error", err)
		}
		engineCfg.Weights = weights
	}

	// Init service
	recommenderService, err := recommender.NewService(tutorRepo, interactionRepo, studentRepo, engineCfg)
	if err != nil {
		logger.Fatal("Failed to build recommender", "error", err)
	}
	tutorService := tutors.NewTutorService(tutorRepo)
	interactionService := interactions.NewInteractionService(interactionRepo, tutorRepo)
	studentService := students.NewStudentService(studentRepo)

	// Init handler
	recommendationHandler := rest.NewRecommendationHandler(
		recommenderService,
		recoCache,
		redisRepo.CacheKey,
		cfg.App.Name,
		cfg.App.Version,
	)
	tutorHandler := rest.NewTutorHandler(tutorService)
	interactionHandler := rest.NewInteractionHandler(interactionService)
	studentHandler := rest.NewStudentHandler(studentService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	authRequired := middleware.AuthRequired(cfg.JWT.SecretKey)
	authOptional := middleware.AuthOptional(cfg.JWT.SecretKey)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recommendationHandler, authOptional)
	router.SetupTutorRoutes(api, tutorHandler, authRequired)
	router.SetupInteractionRoutes(api, interactionHandler, authRequired)
	router.SetupStudentRoutes(api, studentHandler, authRequired)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
