package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DianaCarolina3/recipes/internal/apperr"
	"github.com/DianaCarolina3/recipes/internal/middleware"
	"github.com/DianaCarolina3/recipes/internal/model"
	"github.com/DianaCarolina3/recipes/internal/service"
	"github.com/DianaCarolina3/recipes/internal/types"
	"github.com/DianaCarolina3/recipes/internal/validation"
)

// UserHandler handles user account endpoints. Registration is public; every
// other route requires authentication, and mutations are restricted to the
// account owner or an admin inside the service layer.
type UserHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewUserHandler(userService *service.UserService, authService *service.AuthService) *UserHandler {
	return &UserHandler{userService: userService, authService: authService}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/register", middleware.Validate(validation.UserCreate, middleware.TargetBody), h.Register)

		authed := users.Group("")
		authed.Use(middleware.AuthMiddleware(h.authService))
		{
			authed.GET("",
				middleware.RequireRoles(model.RoleAdmin),
				middleware.ValidateOptional(validation.UserFilter, middleware.TargetQuery),
				h.List)
			authed.GET("/:id", middleware.Validate(validation.IDParams, middleware.TargetParams), h.Get)
			authed.PATCH("/:id",
				middleware.Validate(validation.IDParams, middleware.TargetParams),
				middleware.Validate(validation.UserUpdate, middleware.TargetBody),
				h.Update)
			authed.DELETE("/:id", middleware.Validate(validation.IDParams, middleware.TargetParams), h.Delete)
		}
	}
}

// Register creates a new user account.
func (h *UserHandler) Register(c *gin.Context) {
	in, ok := middleware.ValidatedBody[types.UserCreateInput](c)
	if !ok {
		apperr.Abort(c, apperr.Internal(nil))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), in)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// List returns all users, optionally filtered by name and/or lastname.
// Admin only.
func (h *UserHandler) List(c *gin.Context) {
	var filter *types.UserFilter
	if f, ok := middleware.ValidatedQuery[types.UserFilter](c); ok {
		filter = &f
	}

	users, err := h.userService.List(c.Request.Context(), filter)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Get returns a single user by id. Restricted to the account owner or an
// admin.
func (h *UserHandler) Get(c *gin.Context) {
	params, ok := middleware.ValidatedParams[types.IDParam](c)
	if !ok {
		apperr.Abort(c, apperr.Internal(nil))
		return
	}

	if middleware.CallerRole(c) != model.RoleAdmin {
		if err := service.AssertOwnership(middleware.CallerID(c), params.ID); err != nil {
			apperr.Abort(c, err)
			return
		}
	}

	user, err := h.userService.GetByID(c.Request.Context(), params.ID)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update applies a partial update to a user account.
func (h *UserHandler) Update(c *gin.Context) {
	params, ok := middleware.ValidatedParams[types.IDParam](c)
	if !ok {
		apperr.Abort(c, apperr.Internal(nil))
		return
	}
	in, ok := middleware.ValidatedBody[types.UserUpdateInput](c)
	if !ok {
		apperr.Abort(c, apperr.Internal(nil))
		return
	}

	user, err := h.userService.Update(c.Request.Context(), params.ID, middleware.CallerID(c), middleware.CallerRole(c), in)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete removes a user account.
func (h *UserHandler) Delete(c *gin.Context) {
	params, ok := middleware.ValidatedParams[types.IDParam](c)
	if !ok {
		apperr.Abort(c, apperr.Internal(nil))
		return
	}

	if err := h.userService.Delete(c.Request.Context(), params.ID, middleware.CallerID(c), middleware.CallerRole(c)); err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
