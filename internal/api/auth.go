package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DianaCarolina3/recipes/internal/apperr"
	"github.com/DianaCarolina3/recipes/internal/middleware"
	"github.com/DianaCarolina3/recipes/internal/service"
	"github.com/DianaCarolina3/recipes/internal/types"
	"github.com/DianaCarolina3/recipes/internal/validation"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the auth routes.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", middleware.Validate(validation.Login, middleware.TargetBody), h.Login)
	}
}

// Login verifies credentials and returns a signed token.
func (h *AuthHandler) Login(c *gin.Context) {
	in, ok := middleware.ValidatedBody[types.LoginInput](c)
	if !ok {
		apperr.Abort(c, apperr.Internal(nil))
		return
	}

	token, err := h.authService.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
