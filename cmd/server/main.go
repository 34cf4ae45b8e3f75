package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"interviewcoach/api/internal/archive"
	"interviewcoach/api/internal/config"
	"interviewcoach/api/internal/handlers"
	"interviewcoach/api/internal/jobs"
	"interviewcoach/api/internal/llm"
	_ "interviewcoach/api/internal/llm/gemini"
	"interviewcoach/api/internal/models"
	"interviewcoach/api/internal/prompts"
	"interviewcoach/api/internal/routers"
	"interviewcoach/api/internal/session"
)

func registerRoutes(router *chi.Mux, sessionHandler *handlers.SessionHandler, interviewHandler *handlers.InterviewHandler, archiveHandler *handlers.ArchiveHandler, healthHandler *handlers.HealthHandler) {
	routers.HealthRoutes(router, healthHandler)
	routers.SessionRoutes(router, sessionHandler)
	routers.InterviewRoutes(router, interviewHandler)
	if archiveHandler != nil {
		routers.ArchiveRoutes(router, archiveHandler)
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// initDatabase initializes the PostgreSQL database connection for the
// session archive
func initDatabase() (*gorm.DB, error) {
	host := getEnv("POSTGRES_HOST", "localhost")
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "postgres")
	dbname := getEnv("POSTGRES_DB", "postgres")
	port := getEnv("POSTGRES_PORT", "5432")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.SessionArchive{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider),
		zap.Duration("session_timeout", cfg.SessionTimeout))

	// prompt builder
	promptBuilder, err := prompts.NewBuilder()
	if err != nil {
		logger.Fatal("Failed to initialize prompt builder", zap.Error(err))
	}

	// AI provider based on configuration
	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	gateway := llm.NewGateway(aiProvider, promptBuilder, logger)
	store := session.NewStore(cfg.SessionTimeout)

	sessionHandler := handlers.NewSessionHandler(store, logger)
	interviewHandler := handlers.NewInterviewHandler(gateway, store, logger)
	healthHandler := handlers.NewHealthHandler(gateway, promptBuilder, store, cfg)

	// Session archive (only if a database is configured)
	var archiveHandler *handlers.ArchiveHandler
	if cfg.ArchiveEnabled {
		db, err := initDatabase()
		if err != nil {
			logger.Error("Failed to initialize database, session archive will be disabled", zap.Error(err))
		} else {
			archiveManager := archive.NewManager(db)
			sessionHandler.SetArchiveManager(archiveManager)
			archiveHandler = handlers.NewArchiveHandler(archiveManager)
			logger.Info("Session archive initialized successfully")
		}
	}

	// Expired-session sweeper; runs once at startup and then on schedule
	var sweeperJob *jobs.SessionSweeperJob
	if cfg.SweepEnabled {
		sweeperJob = jobs.NewSessionSweeperJob(store, cfg.SweepSchedule, logger)
		if err := sweeperJob.Start(); err != nil {
			logger.Error("Failed to start session sweeper", zap.Error(err))
		}
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Logger, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))

	registerRoutes(router, sessionHandler, interviewHandler, archiveHandler, healthHandler)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Interview coach service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview coach service shutting down...")

	if sweeperJob != nil {
		sweeperJob.Stop()
		logger.Info("Session sweeper stopped")
	}

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Interview coach service exited")
}
