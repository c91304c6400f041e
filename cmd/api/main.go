package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/musasahinkundakci/firebase-backend-recipe/config"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/api"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/database"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/events"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/logger"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/middleware"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/repository"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/scheduler"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/server"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/service"
)

// publishRunBudget caps a single publish sweep.
const publishRunBudget = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Errorf("failed to load configuration: %v", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Log.Errorf("failed to connect to mongo: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Disconnect(context.Background(), db); err != nil {
			logger.Log.Errorf("failed to disconnect from mongo: %v", err)
		}
	}()

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Log.Errorf("failed to connect to redis: %v", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	s3cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		logger.Log.Errorf("failed to configure s3: %v", err)
		os.Exit(1)
	}

	// Repositories and the event bus.
	bus := events.NewInMemoryBus(128)
	recipeRepo := repository.NewRecipeRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	// Services.
	authService := service.NewAuthService(accountRepo, bus, cfg.JWTSecret)
	recipeService := service.NewRecipeService(recipeRepo, counterRepo, bus)
	publisherService := service.NewPublisherService(recipeRepo, bus)

	// Background reactions.
	service.NewCounterService(counterRepo).Register(bus)
	service.NewImageCleanupService(service.NewS3ObjectStore(s3cfg)).Register(bus)
	service.NewProfileService(profileRepo).Register(bus)

	// Scheduled publisher.
	daily := scheduler.NewDaily("recipe-publisher", cfg.PublishCheckHour, publishRunBudget, publisherService.Run)
	daily.Start(ctx)

	limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Window:    time.Minute,
		Limit:     120,
		KeyPrefix: "ratelimit",
	})

	srv := server.New(cfg,
		api.NewRecipeHandler(recipeService, authService),
		api.NewAuthHandler(authService),
		limiter,
	)

	errChan := make(chan error, 1)
	go func() {
		logger.Log.Infof("server listening on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Log.Errorf("server error: %v", err)
		}
	case sig := <-quit:
		logger.Log.Infof("received signal: %v", sig)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("server shutdown error: %v", err)
	}

	cancel()
	bus.Close()
	logger.Log.Info("server stopped")
}
