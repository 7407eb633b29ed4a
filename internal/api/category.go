package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DianaCarolina3/recipes/internal/apperr"
	"github.com/DianaCarolina3/recipes/internal/service"
)

// CategoryHandler serves the category lookup table.
type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// RegisterRoutes registers the category routes.
func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories", h.List)
}

// List returns all categories ordered by name.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
