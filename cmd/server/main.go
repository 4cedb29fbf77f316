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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"onemorning/internal/auth"
	"onemorning/internal/common/clock"
	"onemorning/internal/common/uuid"
	"onemorning/internal/config"
	"onemorning/internal/deck"
	"onemorning/internal/handlers/httpapi"
	gameRepo "onemorning/internal/repositories/game"
	playerRepo "onemorning/internal/repositories/player"
	revealRepo "onemorning/internal/repositories/reveal"
	gameService "onemorning/internal/services/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	// Initialize repositories
	games, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create game repository", zap.Error(err))
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create player repository", zap.Error(err))
	}

	reveals, err := revealRepo.NewRedis(&revealRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create reveal repository", zap.Error(err))
	}

	systemClock := &clock.DefaultClock{}
	uuider := uuid.New()

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		DiscussionSeconds: cfg.DiscussionSeconds,
		GameRepo:          games,
		PlayerRepo:        players,
		RevealRepo:        reveals,
		Dealer:            deck.New(&deck.Config{}),
		Clock:             systemClock,
		UUIDGenerator:     uuider,
	})
	if err != nil {
		logger.Fatal("Failed to create game service", zap.Error(err))
	}

	// Initialize token issuer
	issuer, err := auth.New(&auth.Config{
		Secret:        []byte(cfg.TokenSecret),
		TokenTTL:      cfg.TokenTTL,
		Clock:         systemClock,
		UUIDGenerator: uuider,
	})
	if err != nil {
		logger.Fatal("Failed to create token issuer", zap.Error(err))
	}

	// Initialize HTTP handler
	handler, err := httpapi.New(&httpapi.Config{
		GameService: gameSvc,
		GameRepo:    games,
		Issuer:      issuer,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal("Failed to create HTTP handler", zap.Error(err))
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	handler.Register(router)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", cfg.ListenAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down server", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		logger.Error("Error closing Redis client", zap.Error(err))
	}

	logger.Info("Server has been shut down")
}

// newLogger builds a production logger, or a development logger in debug mode
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
