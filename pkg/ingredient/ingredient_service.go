package ingredient

import (
	"Recipe-Catalog-Backend/domain"
	"Recipe-Catalog-Backend/entities"
	"Recipe-Catalog-Backend/pkg/notion"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context) ([]entities.Ingredient, error)
		GetIngredientByID(ctx context.Context, id string) (entities.Ingredient, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (entities.Ingredient, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) GetIngredients(ctx context.Context) ([]entities.Ingredient, error) {
	return s.ingredientRepository.List(ctx)
}

// GetIngredientByID collapses every retrieval failure to "not found". The
// repository keeps store errors distinct; upstream failures are logged here
// before the collapse so they are not mistaken for missing records silently.
func (s *ingredientService) GetIngredientByID(ctx context.Context, id string) (entities.Ingredient, error) {
	ing, err := s.ingredientRepository.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, notion.ErrNotFound) {
			log.Errorf("ingredient lookup failed: %v", err)
		}
		return entities.Ingredient{}, domain.ErrIngredientNotFound
	}
	return ing, nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (entities.Ingredient, error) {
	return s.ingredientRepository.Create(ctx, req)
}
