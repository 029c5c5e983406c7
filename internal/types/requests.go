package types

import "github.com/google/uuid"

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Title        string    `json:"title" binding:"required"`
	Ingredients  []string  `json:"ingredients" binding:"required"`
	Instructions string    `json:"instructions" binding:"required"`
	CategoryID   uuid.UUID `json:"category_id" binding:"required"`
	TagIDs       []uuid.UUID `json:"tag_ids"`
	ImageURL     string    `json:"image_url"`
}

// UpdateRecipeRequest represents the request body for a partial recipe update.
// Only non-nil fields are applied.
type UpdateRecipeRequest struct {
	Title        *string      `json:"title"`
	Ingredients  *[]string    `json:"ingredients"`
	Instructions *string      `json:"instructions"`
	CategoryID   *uuid.UUID   `json:"category_id"`
	TagIDs       *[]uuid.UUID `json:"tag_ids"`
	ImageURL     *string      `json:"image_url"`
}

// RecipeFilter narrows a recipe listing.
type RecipeFilter struct {
	CategoryID *uuid.UUID
	Query      string
}

// RateRecipeRequest represents the request body for submitting a rating
type RateRecipeRequest struct {
	Value int `json:"value" binding:"required"`
}

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest represents the request body for a partial category update
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateTagRequest represents the request body for creating a tag
type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateTagRequest represents the request body for renaming a tag
type UpdateTagRequest struct {
	Name *string `json:"name"`
}

// LoginRequest represents the request body for admin login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	Token string `json:"token"`
}
