// @title NEET Quiz API
// @version 1.0
// @description Generates NEET multiple-choice quizzes with a generative model and analyses quiz results.
// @contact.name API Support
// @license.name MIT
// @host localhost:5000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"neet-quiz/internal/adapter"
	"neet-quiz/internal/adapter/oracle"
	"neet-quiz/internal/cache"
	"neet-quiz/internal/config"
	"neet-quiz/internal/domain"
	"neet-quiz/internal/logger"
	"neet-quiz/internal/service"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	quizOracle, closeOracle, err := oracle.New(ctx, cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create oracle", zap.String("provider", cfg.LLM.Provider), zap.Error(err))
	}
	defer func() {
		if err := closeOracle(); err != nil {
			appLogger.Warn("Failed to close oracle", zap.Error(err))
		}
	}()
	appLogger.Info("Oracle initialized", zap.String("provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.Model))

	var batchStore domain.Cache
	if cfg.CacheEnabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.String("address", cfg.Redis.Address), zap.Error(err))
		}
		defer redisClient.Close()
		batchStore = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.Duration("batch_ttl", cfg.Redis.BatchTTL))
	}

	quizService := service.NewQuizService(quizOracle, service.NewQuizBatchCache(batchStore, cfg.Redis.BatchTTL))
	app := newApp(cfg, quizService)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}
