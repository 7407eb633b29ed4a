package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DianaCarolina3/recipes/internal/apperr"
	"github.com/DianaCarolina3/recipes/internal/middleware"
	"github.com/DianaCarolina3/recipes/internal/model"
	"github.com/DianaCarolina3/recipes/internal/service"
	"github.com/DianaCarolina3/recipes/internal/types"
	"github.com/DianaCarolina3/recipes/internal/validation"
)

const maxImageSize = 10 << 20 // 10 MB

// RecipeHandler handles recipe endpoints. Reads are public; mutations require
// authentication and pass through the mutation rate limiter when available.
type RecipeHandler struct {
	recipeService   *service.RecipeService
	imageService    *service.ImageService
	authService     *service.AuthService
	mutationLimiter *middleware.RateLimiter
}

func NewRecipeHandler(recipeService *service.RecipeService, imageService *service.ImageService, authService *service.AuthService, mutationLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipeService:   recipeService,
		imageService:    imageService,
		authService:     authService,
		mutationLimiter: mutationLimiter,
	}
}

// RegisterRoutes registers the recipe routes.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.GET("/:id", middleware.Validate(validation.IDParams, middleware.TargetParams), h.Get)

		authed := recipes.Group("")
		authed.Use(middleware.AuthMiddleware(h.authService))
		if h.mutationLimiter != nil {
			authed.Use(h.mutationLimiter.Middleware())
		}
		{
			authed.POST("", middleware.Validate(validation.RecipeCreate, middleware.TargetBody), h.Create)
			authed.PATCH("/:id",
				middleware.Validate(validation.IDParams, middleware.TargetParams),
				middleware.Validate(validation.RecipeUpdate, middleware.TargetBody),
				h.Update)
			authed.DELETE("/:id", middleware.Validate(validation.IDParams, middleware.TargetParams), h.Delete)
			authed.POST("/:id/image", middleware.Validate(validation.IDParams, middleware.TargetParams), h.UploadImage)
		}
	}
}

// List returns all recipes with their children.
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipeService.List(c.Request.Context())
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// Get returns a single recipe with author, category, and children.
func (h *RecipeHandler) Get(c *gin.Context) {
	params, ok := middleware.ValidatedParams[types.IDParam](c)
	if !ok {
		apperr.Abort(c, apperr.Internal(nil))
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), params.ID)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// Create persists a new recipe authored by the caller.
func (h *RecipeHandler) Create(c *gin.Context) {
	in, ok := middleware.ValidatedBody[types.RecipeCreateInput](c)
	if !ok {
		apperr.Abort(c, apperr.Internal(nil))
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), middleware.CallerID(c), in)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// Update applies a partial update to a recipe the caller owns.
func (h *RecipeHandler) Update(c *gin.Context) {
	params, ok := middleware.ValidatedParams[types.IDParam](c)
	if !ok {
		apperr.Abort(c, apperr.Internal(nil))
		return
	}
	in, ok := middleware.ValidatedBody[types.RecipeUpdateInput](c)
	if !ok {
		apperr.Abort(c, apperr.Internal(nil))
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), params.ID, middleware.CallerID(c), middleware.CallerRole(c), in)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// Delete removes a recipe the caller owns, together with its children.
func (h *RecipeHandler) Delete(c *gin.Context) {
	params, ok := middleware.ValidatedParams[types.IDParam](c)
	if !ok {
		apperr.Abort(c, apperr.Internal(nil))
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), params.ID, middleware.CallerID(c), middleware.CallerRole(c)); err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

// UploadImage stores a recipe image in S3 and saves its public URL.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	params, ok := middleware.ValidatedParams[types.IDParam](c)
	if !ok {
		apperr.Abort(c, apperr.Internal(nil))
		return
	}

	// Check ownership before touching storage.
	existing, err := h.recipeService.Get(c.Request.Context(), params.ID)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	if middleware.CallerRole(c) != model.RoleAdmin {
		if err := service.AssertOwnership(middleware.CallerID(c), existing.AuthorID); err != nil {
			apperr.Abort(c, err)
			return
		}
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		apperr.Abort(c, apperr.Validation(apperr.FieldErrors{"image": {"Image file is required"}}))
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		apperr.Abort(c, apperr.Validation(apperr.FieldErrors{"image": {"Image must be smaller than 10MB"}}))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		apperr.Abort(c, apperr.Internal(err))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	url, err := h.imageService.UploadRecipeImage(c.Request.Context(), params.ID, data, contentType)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	recipe, err := h.recipeService.SetImage(c.Request.Context(), params.ID, middleware.CallerID(c), middleware.CallerRole(c), url)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}
