package ingredient

import (
	"Recipe-Catalog-Backend/domain"
	"Recipe-Catalog-Backend/entities"
	"Recipe-Catalog-Backend/pkg/notion"
	"context"
	"fmt"
)

type (
	IngredientRepository interface {
		List(ctx context.Context) ([]entities.Ingredient, error)
		GetByID(ctx context.Context, id string) (entities.Ingredient, error)
		Create(ctx context.Context, req domain.CreateIngredientRequest) (entities.Ingredient, error)
	}

	ingredientRepository struct {
		client     *notion.Client
		databaseID string
	}
)

func NewIngredientRepository(client *notion.Client, databaseID string) IngredientRepository {
	return &ingredientRepository{client: client, databaseID: databaseID}
}

func (r *ingredientRepository) List(ctx context.Context) ([]entities.Ingredient, error) {
	res, err := r.client.QueryDatabase(ctx, r.databaseID, notion.QueryRequest{
		Sorts: []notion.Sort{{Property: "Name", Direction: notion.SortAscending}},
	})
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}

	ingredients := make([]entities.Ingredient, 0, len(res.Results))
	for _, page := range res.Results {
		ingredients = append(ingredients, toIngredient(page))
	}
	return ingredients, nil
}

func (r *ingredientRepository) GetByID(ctx context.Context, id string) (entities.Ingredient, error) {
	page, err := r.client.RetrievePage(ctx, id)
	if err != nil {
		return entities.Ingredient{}, fmt.Errorf("get ingredient %s: %w", id, err)
	}
	return toIngredient(page), nil
}

// Create does not check name uniqueness; duplicate names become distinct
// entities with their own ids.
func (r *ingredientRepository) Create(ctx context.Context, req domain.CreateIngredientRequest) (entities.Ingredient, error) {
	page, err := r.client.CreatePage(ctx, notion.CreatePageRequest{
		Parent: notion.Parent{DatabaseID: r.databaseID},
		Properties: notion.Properties{
			"Name":     notion.NewTitle(req.Name),
			"Category": notion.NewSelect(req.Category),
			"Unit":     notion.NewSelect(req.Unit),
		},
	})
	if err != nil {
		return entities.Ingredient{}, fmt.Errorf("create ingredient: %w", err)
	}
	return toIngredient(page), nil
}

func toIngredient(page notion.Page) entities.Ingredient {
	props := page.Properties
	return entities.Ingredient{
		ID:       page.ID,
		Name:     notion.PlainText(props["Name"].Title),
		Category: notion.SelectName(props["Category"].Select),
		Unit:     notion.SelectName(props["Unit"].Select),
	}
}
