package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"felizeducation/internal/audio"
	"felizeducation/internal/config"
	"felizeducation/internal/content"
	"felizeducation/internal/database"
	"felizeducation/internal/handlers"
	"felizeducation/internal/llm"
	"felizeducation/internal/repository"
	"felizeducation/internal/security"
	"felizeducation/internal/service"
)

const (
	authRateLimit  = 10
	authRatePeriod = time.Minute
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := database.InitializeWithType(cfg.DatabaseType, cfg.DatabaseURL, cfg.DatabasePath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize database")
	}
	defer db.Close()

	logrus.WithField("type", cfg.DatabaseType).Info("database connection established")

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}

	kv := database.NewSQLKV(db)

	// Repositories and services
	userRepo := repository.NewUserRepository(kv)
	sessionRepo := repository.NewSessionRepository(kv)
	transactionRepo := repository.NewTransactionRepository(kv)

	emailService, err := service.NewEmailService(ctx, cfg.AWSRegion, cfg.EmailFrom, "Feliz Education")
	if err != nil {
		logrus.WithError(err).Warn("email service disabled")
	}

	profileService := service.NewProfileService(userRepo, sessionRepo, emailService)
	billingService := service.NewBillingService(userRepo, sessionRepo, transactionRepo)

	// Generative content provider; the app runs fine without one.
	var provider llm.Provider
	llmCfg, enabled := llm.ConfigFromEnv()
	if enabled {
		provider, err = llm.NewProvider(ctx, llmCfg)
		if err != nil {
			logrus.WithError(err).Warn("content provider unavailable, serving curated content only")
		} else {
			logrus.WithField("model", provider.ModelID()).Info("content provider ready")
		}
	} else {
		logrus.Info("no content provider configured, serving curated content only")
	}

	resolver := content.NewResolver(provider, llmCfg.Timeout, logrus.StandardLogger())

	if err := os.MkdirAll(cfg.AudioDir, 0o755); err != nil {
		logrus.WithError(err).Fatal("failed to create audio directory")
	}
	phonicsService := audio.NewPhonicsService(cfg.AudioDir)

	// Handlers
	rateLimiter := security.NewRateLimiter(authRateLimit, authRatePeriod)
	middleware := handlers.NewMiddleware(cfg.JWTSecret, cfg.SessionDuration, rateLimiter)
	authHandler := handlers.NewAuthHandler(profileService, middleware)
	lessonHandler := handlers.NewLessonHandler(resolver, profileService, phonicsService, cfg.AudioDir)
	progressHandler := handlers.NewProgressHandler(profileService)
	billingHandler := handlers.NewBillingHandler(billingService)
	adminHandler := handlers.NewAdminHandler(billingService)

	// Routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/auth/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/recommendation", progressHandler.Recommendation)
	mux.HandleFunc("GET /api/letters", lessonHandler.Letters)
	mux.HandleFunc("GET /api/letters/{letter}/audio", lessonHandler.LetterAudio)

	// Authenticated routes
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("POST /api/lessons/generate", middleware.RequireAuth(lessonHandler.GenerateLesson))
	mux.HandleFunc("POST /api/tutor", middleware.RequireAuth(lessonHandler.TutorHelp))
	mux.HandleFunc("POST /api/progress", middleware.RequireAuth(progressHandler.UpdateProgress))
	mux.HandleFunc("POST /api/letters/mastered", middleware.RequireAuth(progressHandler.MarkLetterMastered))
	mux.HandleFunc("POST /api/billing/activate", middleware.RequireAuth(billingHandler.ActivatePremium))
	mux.HandleFunc("POST /api/billing/cancel", middleware.RequireAuth(billingHandler.CancelPremium))

	// Admin routes
	mux.HandleFunc("GET /api/admin/users", middleware.RequireAdmin(adminHandler.Users))
	mux.HandleFunc("GET /api/admin/transactions", middleware.RequireAdmin(adminHandler.Transactions))
	mux.HandleFunc("GET /api/admin/kpis", middleware.RequireAdmin(adminHandler.KPIs))

	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.WithField("addr", addr).Info("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
