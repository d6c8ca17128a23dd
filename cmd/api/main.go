package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jetlab-backend/config"
	"go-jetlab-backend/internal/delivery/http/api"
	"go-jetlab-backend/internal/delivery/http/middleware"
	"go-jetlab-backend/internal/usecase"
	"go-jetlab-backend/pkg/email"
	"go-jetlab-backend/pkg/logger"
	"go-jetlab-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.IsProduction())
	logger.Log.Info("Starting JetLab email backend", "port", cfg.Port, "email_target", cfg.ContactEmailTo)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Mail Sender
	sender := email.NewSMTPSender(cfg)
	if !sender.IsConfigured() {
		logger.Log.Warn("SMTP transport not fully configured - form delivery will fail")
	}

	// 4. Setup rate limit counter store (Redis when available, in-memory otherwise)
	memStore := middleware.NewMemoryStore()
	var limitStore middleware.CounterStore = memStore
	var limitFall middleware.CounterStore
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting uses in-memory counters", "error", err)
		} else {
			limitStore = middleware.NewRedisStore(redis.Client())
			limitFall = memStore
		}
	}

	// 5. Setup UseCases
	submissionUC := usecase.NewSubmissionUsecase(sender, email.NewRenderer())

	// 6. Setup Router
	router := api.NewRouter(api.RouterDeps{
		SubmissionUC: submissionUC,
		LimitStore:   limitStore,
		LimitFall:    limitFall,
		Config:       cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
