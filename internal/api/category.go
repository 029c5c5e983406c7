package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/types"
)

// CategoryHandler exposes the category CRUD endpoints.
type CategoryHandler struct {
	categories service.ICategoryService
}

func NewCategoryHandler(categories service.ICategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// RegisterRoutes mounts reads on the public group and mutations on the admin group.
func (h *CategoryHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	categories := public.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
	}

	protected := admin.Group("/categories")
	{
		protected.POST("", h.CreateCategory)
		protected.PUT("/:id", h.UpdateCategory)
		protected.DELETE("/:id", h.DeleteCategory)
	}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(service.NewValidationError("invalid category id %q", c.Param("id"))) //nolint:errcheck
		return
	}

	category, err := h.categories.GetCategory(c.Request.Context(), id)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req types.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(service.NewValidationError("invalid request body: %v", err)) //nolint:errcheck
		return
	}

	category, err := h.categories.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(service.NewValidationError("invalid category id %q", c.Param("id"))) //nolint:errcheck
		return
	}

	var req types.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(service.NewValidationError("invalid request body: %v", err)) //nolint:errcheck
		return
	}

	category, err := h.categories.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(service.NewValidationError("invalid category id %q", c.Param("id"))) //nolint:errcheck
		return
	}

	if err := h.categories.DeleteCategory(c.Request.Context(), id); err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.Status(http.StatusNoContent)
}
