package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cookbookd/backend/internal/api"
	"github.com/cookbookd/backend/internal/database"
	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/router"
	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/types"
)

// TestEnv holds the in-memory database, services and router for handler tests.
type TestEnv struct {
	DB          *gorm.DB
	AuthService *service.AuthService
	Router      *gin.Engine
}

// SetupTestEnv builds a full router backed by a private in-memory SQLite database.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	authService := service.NewAuthService(db, "test-secret", time.Hour)
	engine := router.SetupRouter(router.Handlers{
		DB:         db,
		Recipes:    api.NewRecipeHandler(service.NewRecipeService(db), nil, nil),
		Categories: api.NewCategoryHandler(service.NewCategoryService(db)),
		Tags:       api.NewTagHandler(service.NewTagService(db)),
		Admin:      api.NewAdminHandler(authService),
		Auth:       authService,
	})

	return &TestEnv{
		DB:          db,
		AuthService: authService,
		Router:      engine,
	}
}

// CreateAdminAndToken creates an admin user and returns it with a valid bearer token.
func (e *TestEnv) CreateAdminAndToken(t *testing.T) (*models.User, string) {
	t.Helper()

	hash, err := service.HashPassword("adminpass123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	admin := models.User{
		Email:        fmt.Sprintf("admin+%s@example.com", uuid.New()),
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := e.DB.Create(&admin).Error; err != nil {
		t.Fatalf("failed to create admin user: %v", err)
	}

	token, err := e.AuthService.GenerateToken(&types.TokenClaims{
		UserID: admin.ID,
		Email:  admin.Email,
		Role:   admin.Role,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return &admin, token
}

// CreateUserAndToken creates a non-admin user and returns it with a valid bearer token.
func (e *TestEnv) CreateUserAndToken(t *testing.T) (*models.User, string) {
	t.Helper()

	hash, err := service.HashPassword("userpass123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Email:        fmt.Sprintf("user+%s@example.com", uuid.New()),
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := e.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := e.AuthService.GenerateToken(&types.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return &user, token
}

// CreateCategory inserts a category directly.
func (e *TestEnv) CreateCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category := models.Category{Name: name}
	if err := e.DB.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return &category
}

// CreateTag inserts a tag directly.
func (e *TestEnv) CreateTag(t *testing.T, name string) *models.Tag {
	t.Helper()
	tag := models.Tag{Name: name}
	if err := e.DB.Create(&tag).Error; err != nil {
		t.Fatalf("failed to create tag: %v", err)
	}
	return &tag
}

// Request performs an HTTP request against the test router.
func (e *TestEnv) Request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}
