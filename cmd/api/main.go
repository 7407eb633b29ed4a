package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/DianaCarolina3/recipes/config"
	"github.com/DianaCarolina3/recipes/internal/database"
	"github.com/DianaCarolina3/recipes/internal/logger"
	"github.com/DianaCarolina3/recipes/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("APP_CONFIG_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, cleanup := logger.New(cfg.LogLevel, cfg.LogJSON)
	defer cleanup()

	db, err := database.New(cfg)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		zlog.Warn("redis unavailable, caching and rate limiting disabled", zap.Error(err))
		redisClient = nil
	}

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		zlog.Warn("s3 unavailable, image uploads disabled", zap.Error(err))
		s3Config = nil
	}

	srv := server.New(cfg, db, redisClient, s3Config, zlog)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		zlog.Info("received signal", zap.String("signal", sig.String()))
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		zlog.Fatal("server shutdown error", zap.Error(err))
	}
	zlog.Info("server stopped")
}
