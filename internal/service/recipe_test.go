package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/types"
)

func TestCreateRecipeValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	category := createTestCategory(t, db, "Mains")

	cases := []struct {
		name string
		req  types.CreateRecipeRequest
	}{
		{"empty title", types.CreateRecipeRequest{
			Title:        "  ",
			Ingredients:  []string{"salt"},
			Instructions: "Season",
			CategoryID:   category.ID,
		}},
		{"no ingredients", types.CreateRecipeRequest{
			Title:        "Plain",
			Instructions: "Serve",
			CategoryID:   category.ID,
		}},
		{"empty instructions", types.CreateRecipeRequest{
			Title:       "Plain",
			Ingredients: []string{"salt"},
			CategoryID:  category.ID,
		}},
		{"missing category", types.CreateRecipeRequest{
			Title:        "Plain",
			Ingredients:  []string{"salt"},
			Instructions: "Serve",
		}},
		{"unknown category", types.CreateRecipeRequest{
			Title:        "Plain",
			Ingredients:  []string{"salt"},
			Instructions: "Serve",
			CategoryID:   uuid.New(),
		}},
		{"unknown tag", types.CreateRecipeRequest{
			Title:        "Plain",
			Ingredients:  []string{"salt"},
			Instructions: "Serve",
			CategoryID:   category.ID,
			TagIDs:       []uuid.UUID{uuid.New()},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateRecipe(context.Background(), &tc.req)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreateRecipeResolvesReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	category := createTestCategory(t, db, "Mains")
	quick := createTestTag(t, db, "quick")
	spicy := createTestTag(t, db, "spicy")

	recipe, err := svc.CreateRecipe(context.Background(), &types.CreateRecipeRequest{
		Title:        "Chili",
		Ingredients:  []string{"beans", "chili"},
		Instructions: "Simmer",
		CategoryID:   category.ID,
		TagIDs:       []uuid.UUID{quick.ID, spicy.ID, quick.ID},
	})
	require.NoError(t, err)

	require.NotNil(t, recipe.Category)
	assert.Equal(t, "Mains", recipe.Category.Name)
	// Duplicate tag ids collapse to one association.
	assert.Len(t, recipe.Tags, 2)
	assert.Zero(t, recipe.AverageRating)
	assert.Zero(t, recipe.RatingsCount)
}

func TestUpdateRecipeOnlyTouchesSuppliedFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	category := createTestCategory(t, db, "Mains")

	recipe, err := svc.CreateRecipe(context.Background(), &types.CreateRecipeRequest{
		Title:        "Chili",
		Ingredients:  []string{"beans", "chili"},
		Instructions: "Simmer",
		CategoryID:   category.ID,
	})
	require.NoError(t, err)

	title := "Chili con carne"
	updated, err := svc.UpdateRecipe(context.Background(), recipe.ID, &types.UpdateRecipeRequest{
		Title: &title,
	})
	require.NoError(t, err)

	assert.Equal(t, "Chili con carne", updated.Title)
	assert.Equal(t, recipe.Instructions, updated.Instructions)
	assert.Equal(t, recipe.CategoryID, updated.CategoryID)
	assert.ElementsMatch(t, recipe.Ingredients, updated.Ingredients)
}

func TestUpdateRecipeReplacesTags(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	category := createTestCategory(t, db, "Mains")
	quick := createTestTag(t, db, "quick")
	vegan := createTestTag(t, db, "vegan")

	recipe, err := svc.CreateRecipe(context.Background(), &types.CreateRecipeRequest{
		Title:        "Chili",
		Ingredients:  []string{"beans"},
		Instructions: "Simmer",
		CategoryID:   category.ID,
		TagIDs:       []uuid.UUID{quick.ID},
	})
	require.NoError(t, err)

	tagIDs := []uuid.UUID{vegan.ID}
	updated, err := svc.UpdateRecipe(context.Background(), recipe.ID, &types.UpdateRecipeRequest{
		TagIDs: &tagIDs,
	})
	require.NoError(t, err)

	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "vegan", updated.Tags[0].Name)
}

func TestUpdateRecipeEmptyTagListClearsTags(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	category := createTestCategory(t, db, "Mains")
	quick := createTestTag(t, db, "quick")

	recipe, err := svc.CreateRecipe(context.Background(), &types.CreateRecipeRequest{
		Title:        "Chili",
		Ingredients:  []string{"beans"},
		Instructions: "Simmer",
		CategoryID:   category.ID,
		TagIDs:       []uuid.UUID{quick.ID},
	})
	require.NoError(t, err)

	tagIDs := []uuid.UUID{}
	updated, err := svc.UpdateRecipe(context.Background(), recipe.ID, &types.UpdateRecipeRequest{
		TagIDs: &tagIDs,
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)
}

func TestDeleteRecipeIdempotence(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	category := createTestCategory(t, db, "Mains")

	recipe, err := svc.CreateRecipe(context.Background(), &types.CreateRecipeRequest{
		Title:        "Chili",
		Ingredients:  []string{"beans"},
		Instructions: "Simmer",
		CategoryID:   category.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecipe(context.Background(), recipe.ID))
	assert.ErrorIs(t, svc.DeleteRecipe(context.Background(), recipe.ID), ErrNotFound)

	_, err = svc.GetRecipe(context.Background(), recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRateRecipeAggregates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	category := createTestCategory(t, db, "Desserts")

	recipe, err := svc.CreateRecipe(context.Background(), &types.CreateRecipeRequest{
		Title:        "Cake",
		Ingredients:  []string{"flour", "sugar"},
		Instructions: "Bake",
		CategoryID:   category.ID,
	})
	require.NoError(t, err)

	for _, value := range []int{5, 4, 3} {
		_, err := svc.RateRecipe(context.Background(), recipe.ID, value, "10.0.0.1")
		require.NoError(t, err)
	}

	rated, err := svc.GetRecipe(context.Background(), recipe.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, rated.AverageRating, 0.001)
	assert.Equal(t, int64(3), rated.RatingsCount)
}

func TestRateRecipeRejectsOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	category := createTestCategory(t, db, "Desserts")

	recipe, err := svc.CreateRecipe(context.Background(), &types.CreateRecipeRequest{
		Title:        "Cake",
		Ingredients:  []string{"flour"},
		Instructions: "Bake",
		CategoryID:   category.ID,
	})
	require.NoError(t, err)

	for _, value := range []int{0, -1, 6} {
		_, err := svc.RateRecipe(context.Background(), recipe.ID, value, "10.0.0.1")
		assert.True(t, IsValidationError(err), "value %d should be rejected", value)
	}

	// Rejected submissions leave the stats untouched.
	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListRecipesFilterAndSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	desserts := createTestCategory(t, db, "Desserts")
	mains := createTestCategory(t, db, "Mains")

	_, err := svc.CreateRecipe(context.Background(), &types.CreateRecipeRequest{
		Title:        "Cake",
		Ingredients:  []string{"flour", "sugar"},
		Instructions: "Bake",
		CategoryID:   desserts.ID,
	})
	require.NoError(t, err)
	_, err = svc.CreateRecipe(context.Background(), &types.CreateRecipeRequest{
		Title:        "Stew",
		Ingredients:  []string{"beef", "carrots"},
		Instructions: "Simmer slowly",
		CategoryID:   mains.ID,
	})
	require.NoError(t, err)

	byCategory, err := svc.ListRecipes(context.Background(), types.RecipeFilter{CategoryID: &desserts.ID})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Cake", byCategory[0].Title)

	// Search is case-insensitive and matches ingredient text.
	byIngredient, err := svc.ListRecipes(context.Background(), types.RecipeFilter{Query: "CARROTS"})
	require.NoError(t, err)
	require.Len(t, byIngredient, 1)
	assert.Equal(t, "Stew", byIngredient[0].Title)

	none, err := svc.ListRecipes(context.Background(), types.RecipeFilter{Query: "anchovies"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
