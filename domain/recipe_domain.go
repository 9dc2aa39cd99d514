package domain

import "errors"

var (
	MessageSuccessGetRecipes        = "success get recipes"
	MessageSuccessGetRecipeDetail   = "success get recipe detail"
	MessageSuccessCreateRecipe      = "recipe created successfully"
	MessageSuccessUpdateRecipe      = "recipe updated successfully"
	MessageSuccessDeleteRecipe      = "recipe deleted successfully"
	MessageSuccessGetMetadata       = "success get recipe metadata"
	MessageSuccessUploadRecipeImage = "recipe image uploaded successfully"

	MessageFailedGetRecipes        = "failed to get recipes"
	MessageFailedGetRecipeDetail   = "failed to get recipe detail"
	MessageFailedCreateRecipe      = "failed to create recipe"
	MessageFailedUpdateRecipe      = "failed to update recipe"
	MessageFailedDeleteRecipe      = "failed to delete recipe"
	MessageFailedGetMetadata       = "failed to get recipe metadata"
	MessageFailedUploadRecipeImage = "failed to upload recipe image"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	CreateRecipeRequest struct {
		Title        string                    `json:"title" validate:"required"`
		Description  string                    `json:"description"`
		ImageURL     string                    `json:"imageUrl" validate:"omitempty,url"`
		Category     string                    `json:"category"`
		Tags         []string                  `json:"tags"`
		Servings     int                       `json:"servings" validate:"min=0"`
		PrepTime     int                       `json:"prepTime" validate:"min=0"`
		CookTime     int                       `json:"cookTime" validate:"min=0"`
		Ingredients  []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
		Instructions []string                  `json:"instructions"`
		SourceURL    string                    `json:"sourceUrl" validate:"omitempty,url"`
		SourceType   string                    `json:"sourceType" validate:"omitempty,oneof=instagram youtube website original"`
	}

	// UpdateRecipeRequest is a partial patch: only non-nil fields are sent to
	// the store, every omitted field keeps its prior value.
	UpdateRecipeRequest struct {
		Title        *string                    `json:"title" validate:"omitempty,min=1"`
		Description  *string                    `json:"description"`
		ImageURL     *string                    `json:"imageUrl" validate:"omitempty,url"`
		Category     *string                    `json:"category"`
		Tags         *[]string                  `json:"tags"`
		Servings     *int                       `json:"servings" validate:"omitempty,min=0"`
		PrepTime     *int                       `json:"prepTime" validate:"omitempty,min=0"`
		CookTime     *int                       `json:"cookTime" validate:"omitempty,min=0"`
		Ingredients  *[]RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
		Instructions *[]string                  `json:"instructions"`
		SourceURL    *string                    `json:"sourceUrl" validate:"omitempty,url"`
		SourceType   *string                    `json:"sourceType" validate:"omitempty,oneof=instagram youtube website original"`
	}

	RecipeIngredientRequest struct {
		IngredientID string `json:"ingredientId" validate:"required"`
		Amount       string `json:"amount"`
	}

	RecipeFilters struct {
		Category string
		Tags     []string
		Search   string
	}

	RecipeMetadataResponse struct {
		Categories []string `json:"categories"`
		Tags       []string `json:"tags"`
	}

	UploadRecipeImageResponse struct {
		ImageURL string `json:"imageUrl"`
	}
)
