package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cookbookd/backend/internal/middleware"
	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/types"
)

// RecipeHandler exposes the recipe CRUD, search and rating endpoints.
type RecipeHandler struct {
	recipes       service.IRecipeService
	images        *service.ImageService
	ratingLimiter *middleware.RateLimiter
}

func NewRecipeHandler(recipes service.IRecipeService, images *service.ImageService, ratingLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipes:       recipes,
		images:        images,
		ratingLimiter: ratingLimiter,
	}
}

// RegisterRoutes mounts read and rating endpoints on the public group and
// mutations on the admin group.
func (h *RecipeHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	recipes := public.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/search", h.SearchRecipes)
		recipes.GET("/category/:categoryId", h.ListRecipesByCategory)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/:id/rate", h.ratingLimiter.Middleware(), h.RateRecipe)
	}

	protected := admin.Group("/recipes")
	{
		protected.POST("", h.CreateRecipe)
		protected.PUT("/:id", h.UpdateRecipe)
		protected.DELETE("/:id", h.DeleteRecipe)
		protected.POST("/:id/image", h.UploadRecipeImage)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := types.RecipeFilter{Query: c.Query("q")}

	if category := c.Query("category"); category != "" {
		categoryID, err := uuid.Parse(category)
		if err != nil {
			c.Error(service.NewValidationError("invalid category id %q", category)) //nolint:errcheck
			return
		}
		filter.CategoryID = &categoryID
	}

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), filter)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context(), types.RecipeFilter{Query: c.Query("q")})
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) ListRecipesByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		c.Error(service.NewValidationError("invalid category id %q", c.Param("categoryId"))) //nolint:errcheck
		return
	}

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), types.RecipeFilter{CategoryID: &categoryID})
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(service.NewValidationError("invalid recipe id %q", c.Param("id"))) //nolint:errcheck
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(service.NewValidationError("invalid request body: %v", err)) //nolint:errcheck
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), &req)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(service.NewValidationError("invalid recipe id %q", c.Param("id"))) //nolint:errcheck
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(service.NewValidationError("invalid request body: %v", err)) //nolint:errcheck
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(service.NewValidationError("invalid recipe id %q", c.Param("id"))) //nolint:errcheck
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) RateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(service.NewValidationError("invalid recipe id %q", c.Param("id"))) //nolint:errcheck
		return
	}

	var req types.RateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(service.NewValidationError("invalid request body: %v", err)) //nolint:errcheck
		return
	}

	recipe, err := h.recipes.RateRecipe(c.Request.Context(), id, req.Value, c.ClientIP())
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) UploadRecipeImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(service.NewValidationError("invalid recipe id %q", c.Param("id"))) //nolint:errcheck
		return
	}

	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "server_error",
			"message": "image storage is not configured",
		})
		return
	}

	// Resolve the recipe first so a bad id fails before the upload.
	if _, err := h.recipes.GetRecipe(c.Request.Context(), id); err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.Error(service.NewValidationError("image file is required")) //nolint:errcheck
		return
	}
	defer file.Close()

	url, err := h.images.UploadRecipeImage(c.Request.Context(), id, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	recipe, err := h.recipes.SetImageURL(c.Request.Context(), id, url)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	c.JSON(http.StatusOK, recipe)
}
