package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/types"
)

// TagHandler exposes the tag CRUD endpoints.
type TagHandler struct {
	tags service.ITagService
}

func NewTagHandler(tags service.ITagService) *TagHandler {
	return &TagHandler{tags: tags}
}

// RegisterRoutes mounts reads on the public group and mutations on the admin group.
func (h *TagHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	tags := public.Group("/tags")
	{
		tags.GET("", h.ListTags)
		tags.GET("/:id", h.GetTag)
	}

	protected := admin.Group("/tags")
	{
		protected.POST("", h.CreateTag)
		protected.PUT("/:id", h.UpdateTag)
		protected.DELETE("/:id", h.DeleteTag)
	}
}

func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tags.ListTags(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(service.NewValidationError("invalid tag id %q", c.Param("id"))) //nolint:errcheck
		return
	}

	tag, err := h.tags.GetTag(c.Request.Context(), id)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req types.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(service.NewValidationError("invalid request body: %v", err)) //nolint:errcheck
		return
	}

	tag, err := h.tags.CreateTag(c.Request.Context(), &req)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(service.NewValidationError("invalid tag id %q", c.Param("id"))) //nolint:errcheck
		return
	}

	var req types.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(service.NewValidationError("invalid request body: %v", err)) //nolint:errcheck
		return
	}

	tag, err := h.tags.UpdateTag(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(service.NewValidationError("invalid tag id %q", c.Param("id"))) //nolint:errcheck
		return
	}

	if err := h.tags.DeleteTag(c.Request.Context(), id); err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.Status(http.StatusNoContent)
}
