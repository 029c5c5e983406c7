package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cookbookd/backend/internal/api"
	"github.com/cookbookd/backend/internal/middleware"
	"github.com/cookbookd/backend/internal/service"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	DB         *gorm.DB
	Recipes    *api.RecipeHandler
	Categories *api.CategoryHandler
	Tags       *api.TagHandler
	Admin      *api.AdminHandler
	Auth       service.IAuthService
}

// SetupRouter configures the application routes. Reads are public; every
// mutation goes through the bearer-token check and the admin role gate.
func SetupRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", api.HealthCheck(h.DB))

	public := router.Group("/api")

	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(h.Auth), middleware.AdminRequired())

	h.Recipes.RegisterRoutes(public, admin)
	h.Categories.RegisterRoutes(public, admin)
	h.Tags.RegisterRoutes(public, admin)
	h.Admin.RegisterRoutes(public, h.Auth)

	return router
}
