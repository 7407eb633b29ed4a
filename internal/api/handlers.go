// Package api wires HTTP handlers to the service layer. Every mutating route
// runs behind the validation gateway and the auth middleware; handlers read
// typed values from the validated context slots and never touch raw input.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/DianaCarolina3/recipes/config"
	"github.com/DianaCarolina3/recipes/internal/middleware"
	"github.com/DianaCarolina3/recipes/internal/service"
)

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": "v1.0.0",
	})
}

// RegisterRoutes registers all API routes on the router.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, s3Config *config.S3Config) {
	router.GET("/health", HealthCheck)

	authService := service.NewAuthService(db, cfg.JWTSecret)

	// Rate limiting degrades gracefully when Redis is unavailable.
	var mutationLimiter *middleware.RateLimiter
	if redisClient != nil {
		mutationLimiter = middleware.NewRecipeMutationRateLimiter(redisClient)
	}

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(service.NewUserService(db), authService)
	recipeHandler := NewRecipeHandler(service.NewRecipeService(db), service.NewImageService(s3Config), authService, mutationLimiter)
	categoryHandler := NewCategoryHandler(service.NewCategoryService(db, redisClient))

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	userHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	categoryHandler.RegisterRoutes(v1)
}
