package entities

import "time"

type Recipe struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	ImageURL     string             `json:"imageUrl"`
	Category     string             `json:"category"`
	Tags         []string           `json:"tags"`
	Servings     int                `json:"servings"`
	PrepTime     int                `json:"prepTime"` // minutes
	CookTime     int                `json:"cookTime"` // minutes
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	SourceURL    string             `json:"sourceUrl,omitempty"`
	SourceType   string             `json:"sourceType,omitempty"` // "instagram", "youtube", "website", "original"
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// RecipeIngredient pairs an ingredient reference with a free-form amount.
// Name and Unit are denormalized from the referenced ingredient at read time;
// only IngredientID is persisted.
type RecipeIngredient struct {
	IngredientID string `json:"ingredientId"`
	Name         string `json:"name"`
	Amount       string `json:"amount"`
	Unit         string `json:"unit"`
}
