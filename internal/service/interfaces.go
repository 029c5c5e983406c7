package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	ListRecipes(ctx context.Context, filter types.RecipeFilter) ([]*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	RateRecipe(ctx context.Context, id uuid.UUID, value int, submittedBy string) (*models.Recipe, error)
	SetImageURL(ctx context.Context, id uuid.UUID, url string) (*models.Recipe, error)
}

// ICategoryService defines the interface for category operations
type ICategoryService interface {
	CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (*models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *types.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// ITagService defines the interface for tag operations
type ITagService interface {
	CreateTag(ctx context.Context, req *types.CreateTagRequest) (*models.Tag, error)
	GetTag(ctx context.Context, id uuid.UUID) (*models.Tag, error)
	ListTags(ctx context.Context) ([]*models.Tag, error)
	UpdateTag(ctx context.Context, id uuid.UUID, req *types.UpdateTagRequest) (*models.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
}
