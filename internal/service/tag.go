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

// TagService handles tag operations
type TagService struct {
	db *gorm.DB
}

// NewTagService creates a new TagService instance
func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// CreateTag creates a tag with a unique name.
func (s *TagService) CreateTag(ctx context.Context, req *types.CreateTagRequest) (*models.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("name is required")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Tag{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, NewValidationError("tag %q already exists", name)
	}

	tag := models.Tag{Name: name}
	if err := s.db.WithContext(ctx).Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetTag retrieves a tag by ID.
func (s *TagService) GetTag(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// ListTags lists all tags ordered by name.
func (s *TagService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	var tags []models.Tag
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Tag, len(tags))
	for i := range tags {
		result[i] = &tags[i]
	}
	return result, nil
}

// UpdateTag renames a tag, keeping names unique.
func (s *TagService) UpdateTag(ctx context.Context, id uuid.UUID, req *types.UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewValidationError("name must not be empty")
		}
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Tag{}).
			Where("name = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, NewValidationError("tag %q already exists", name)
		}
		if err := s.db.WithContext(ctx).Model(tag).Update("name", name).Error; err != nil {
			return nil, err
		}
	}
	return s.GetTag(ctx, id)
}

// DeleteTag removes a tag. Deletion is rejected while any recipe still references it.
func (s *TagService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	tag, err := s.GetTag(ctx, id)
	if err != nil {
		return err
	}

	var refs int64
	if err := s.db.WithContext(ctx).Table("recipe_tags").Where("tag_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return NewValidationError("tag %q is referenced by %d recipe(s)", tag.Name, refs)
	}

	return s.db.WithContext(ctx).Delete(tag).Error
}
