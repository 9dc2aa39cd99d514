package domain

import "errors"

var (
	MessageSuccessGetIngredients      = "success get ingredients"
	MessageSuccessGetIngredientDetail = "success get ingredient detail"
	MessageSuccessCreateIngredient    = "ingredient created successfully"

	MessageFailedGetIngredients      = "failed to get ingredients"
	MessageFailedGetIngredientDetail = "failed to get ingredient detail"
	MessageFailedCreateIngredient    = "failed to create ingredient"

	ErrIngredientNotFound = errors.New("ingredient not found")
)

type CreateIngredientRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
}
