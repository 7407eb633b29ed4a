// Package server assembles the gin engine and runs the HTTP server.
package server

import (
	"context"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DianaCarolina3/recipes/config"
	"github.com/DianaCarolina3/recipes/internal/api"
	"github.com/DianaCarolina3/recipes/internal/middleware"
)

// Server wraps the gin engine and the underlying http.Server.
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New builds the server with logging, recovery, and CORS middleware and all
// API routes registered.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config, logger *zap.Logger) *Server {
	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(middleware.CORS())

	api.RegisterRoutes(router, db, redisClient, cfg, s3Config)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:         cfg.ServerHost + ":" + cfg.ServerPort,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.logger.Info("starting http server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
