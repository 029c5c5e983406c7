package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/cookbookd/backend/config"
)

// ImageService stores recipe photos in S3.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates a new ImageService instance
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// Presigned links stay valid long enough for the admin UI to render and
// copy the image into the recipe record.
const imageURLTTL = 24 * time.Hour

// UploadRecipeImage stores an uploaded photo under a recipe-scoped key and
// returns a presigned URL for it.
func (s *ImageService) UploadRecipeImage(ctx context.Context, recipeID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	if s.s3Config == nil || s.s3Config.Client == nil {
		return "", fmt.Errorf("image storage is not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", NewValidationError("unsupported image type %q", ext)
	}

	key := fmt.Sprintf("recipes/%s/%s%s", recipeID, uuid.New(), ext)
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url, err := s.s3Config.GeneratePresignedURL(ctx, key, imageURLTTL)
	if err != nil {
		return "", fmt.Errorf("failed to presign image URL: %w", err)
	}
	return url, nil
}
