package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/auth"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/config"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/database"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/genai"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/handler"
	middlewarepkg "github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/middleware"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/repository"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/router"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	var feedbackLog repository.FeedbackLog
	var authHandler *handler.AuthHandler

	if cfg.DatabaseURL != "" {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		defer pool.Close()

		if err := database.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("failed to prepare schema: %v", err)
		}

		feedbackLog = repository.NewPGXFeedbackLog(pool)

		authService := service.NewAuthService(repository.NewPGXUsersRepository(pool), jwtManager)
		if err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("failed to bootstrap admin account: %v", err)
		}
		authHandler = handler.NewAuthHandler(authService)
	} else {
		log.Printf("DATABASE_URL not set, storing feedback in %s and disabling the admin surface", cfg.FeedbackFile)
		feedbackLog = repository.NewFileFeedbackLog(cfg.FeedbackFile)
	}

	gemini := genai.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, nil)
	if !gemini.Configured() {
		log.Printf("GEMINI_API_KEY not set, plans use the offline generator")
	}

	plannerService := service.NewPlannerService(gemini, nil)
	feedbackService := service.NewFeedbackService(feedbackLog, nil)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, router.Handlers{
		Auth:     authHandler,
		Plan:     handler.NewPlanHandler(plannerService),
		Feedback: handler.NewFeedbackHandler(feedbackService),
	})

	log.Printf("travel planner api listening on :%s", cfg.Port)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
