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

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe validates the request, resolves its references and persists the recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, NewValidationError("title is required")
	}
	if strings.TrimSpace(req.Instructions) == "" {
		return nil, NewValidationError("instructions are required")
	}
	if len(req.Ingredients) == 0 {
		return nil, NewValidationError("at least one ingredient is required")
	}

	if err := s.resolveCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(ctx, req.TagIDs)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ImageURL:     req.ImageURL,
		CategoryID:   req.CategoryID,
		Tags:         tags,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, recipe.ID)
}

// GetRecipe retrieves a recipe by ID with its references and rating stats.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.attachRatingStats(ctx, []*models.Recipe{&recipe}); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes lists recipes, optionally narrowed by category and keyword search
// over title, ingredients and instructions.
func (s *RecipeService) ListRecipes(ctx context.Context, filter types.RecipeFilter) ([]*models.Recipe, error) {
	query := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Order("created_at DESC")

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		if s.db.Dialector.Name() == "postgres" {
			query = query.Where(
				"LOWER(title) LIKE ? OR LOWER(instructions) LIKE ? OR LOWER(ingredients::text) LIKE ?",
				like, like, like)
		} else {
			query = query.Where(
				"LOWER(title) LIKE ? OR LOWER(instructions) LIKE ? OR LOWER(ingredients) LIKE ?",
				like, like, like)
		}
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	if err := s.attachRatingStats(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateRecipe applies only the supplied fields, re-validating any changed references.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, NewValidationError("title must not be empty")
		}
		updates["title"] = *req.Title
	}
	if req.Instructions != nil {
		if strings.TrimSpace(*req.Instructions) == "" {
			return nil, NewValidationError("instructions must not be empty")
		}
		updates["instructions"] = *req.Instructions
	}
	if req.Ingredients != nil {
		if len(*req.Ingredients) == 0 {
			return nil, NewValidationError("at least one ingredient is required")
		}
		updates["ingredients"] = models.JSONStringArray(*req.Ingredients)
	}
	if req.CategoryID != nil {
		if err := s.resolveCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&recipe).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.TagIDs != nil {
			tags, err := s.resolveTags(ctx, *req.TagIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(&recipe).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, id)
}

// DeleteRecipe removes the recipe. A repeated delete of the same id reports not-found.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Delete(&recipe).Error
}

// RateRecipe appends a rating contribution and returns the recipe with fresh stats.
func (s *RecipeService) RateRecipe(ctx context.Context, id uuid.UUID, value int, submittedBy string) (*models.Recipe, error) {
	if value < 1 || value > 5 {
		return nil, NewValidationError("rating value must be between 1 and 5")
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rating := models.Rating{
		RecipeID:    id,
		Value:       value,
		SubmittedBy: submittedBy,
	}
	if err := s.db.WithContext(ctx).Create(&rating).Error; err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, id)
}

// SetImageURL stores the uploaded image location on the recipe.
func (s *RecipeService) SetImageURL(ctx context.Context, id uuid.UUID, url string) (*models.Recipe, error) {
	result := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Update("image_url", url)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetRecipe(ctx, id)
}

func (s *RecipeService) resolveCategory(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return NewValidationError("category_id is required")
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NewValidationError("category %s does not exist", id)
	}
	return nil
}

// resolveTags deduplicates the requested tag ids and loads them, failing
// validation if any does not resolve to a live tag.
func (s *RecipeService) resolveTags(ctx context.Context, ids []uuid.UUID) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	var tags []models.Tag
	if err := s.db.WithContext(ctx).Where("id IN ?", unique).Find(&tags).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(unique) {
		found := make(map[uuid.UUID]struct{}, len(tags))
		for _, t := range tags {
			found[t.ID] = struct{}{}
		}
		for _, id := range unique {
			if _, ok := found[id]; !ok {
				return nil, NewValidationError("tag %s does not exist", id)
			}
		}
	}
	return tags, nil
}

type ratingStats struct {
	RecipeID uuid.UUID
	Average  float64
	Count    int64
}

func (s *RecipeService) attachRatingStats(ctx context.Context, recipes []*models.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
	}

	var stats []ratingStats
	err := s.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("recipe_id, AVG(value) AS average, COUNT(*) AS count").
		Where("recipe_id IN ?", ids).
		Group("recipe_id").
		Scan(&stats).Error
	if err != nil {
		return err
	}

	byID := make(map[uuid.UUID]ratingStats, len(stats))
	for _, st := range stats {
		byID[st.RecipeID] = st
	}
	for _, r := range recipes {
		if st, ok := byID[r.ID]; ok {
			r.AverageRating = st.Average
			r.RatingsCount = st.Count
		}
	}
	return nil
}
