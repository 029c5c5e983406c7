package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cookbookd/backend/internal/middleware"
	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/types"
)

// AdminHandler exposes admin login and account details.
type AdminHandler struct {
	auth service.IAuthService
}

func NewAdminHandler(auth service.IAuthService) *AdminHandler {
	return &AdminHandler{auth: auth}
}

// RegisterRoutes mounts login on the public group and details behind the
// auth middleware.
func (h *AdminHandler) RegisterRoutes(public *gin.RouterGroup, validator middleware.TokenValidator) {
	admin := public.Group("/admin")
	{
		admin.POST("/login", h.Login)
		admin.GET("/details", middleware.AuthMiddleware(validator), h.Details)
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(service.NewValidationError("invalid request body: %v", err)) //nolint:errcheck
		return
	}

	token, _, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	c.JSON(http.StatusOK, types.LoginResponse{Token: token})
}

func (h *AdminHandler) Details(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.Error(service.ErrInvalidToken) //nolint:errcheck
		return
	}

	user, err := h.auth.GetUserByID(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	c.JSON(http.StatusOK, user)
}
