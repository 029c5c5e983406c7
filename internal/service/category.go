package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/types"
)

// CategoryService handles category operations
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryService instance
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// CreateCategory creates a category with a unique name.
func (s *CategoryService) CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("name is required")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, NewValidationError("category %q already exists", name)
	}

	category := models.Category{
		Name:        name,
		Description: req.Description,
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategory retrieves a category by ID.
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// ListCategories lists all categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Category, len(categories))
	for i := range categories {
		result[i] = &categories[i]
	}
	return result, nil
}

// UpdateCategory applies only the supplied fields.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *types.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewValidationError("name must not be empty")
		}
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Category{}).
			Where("name = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, NewValidationError("category %q already exists", name)
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(category).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetCategory(ctx, id)
}

// DeleteCategory removes a category. Deletion is rejected while any recipe
// still references it.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return err
	}

	var refs int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("category_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return NewValidationError("category %q is referenced by %d recipe(s)", category.Name, refs)
	}

	return s.db.WithContext(ctx).Delete(category).Error
}
