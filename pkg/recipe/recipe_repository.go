package recipe

import (
	"Recipe-Catalog-Backend/domain"
	"Recipe-Catalog-Backend/entities"
	"Recipe-Catalog-Backend/pkg/ingredient"
	"Recipe-Catalog-Backend/pkg/notion"
	"context"
	"fmt"
)

type (
	RecipeRepository interface {
		List(ctx context.Context, filters domain.RecipeFilters) ([]entities.Recipe, error)
		GetByID(ctx context.Context, id string) (entities.Recipe, error)
		Create(ctx context.Context, req domain.CreateRecipeRequest) (entities.Recipe, error)
		Update(ctx context.Context, id string, req domain.UpdateRecipeRequest) (entities.Recipe, error)
		Delete(ctx context.Context, id string) error
		ListByIngredients(ctx context.Context, ingredientIDs []string) ([]entities.Recipe, error)
		GetCategories(ctx context.Context) ([]string, error)
		GetTags(ctx context.Context) ([]string, error)
	}

	recipeRepository struct {
		client               *notion.Client
		databaseID           string
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewRecipeRepository(client *notion.Client, databaseID string, ingredientRepository ingredient.IngredientRepository) RecipeRepository {
	return &recipeRepository{
		client:               client,
		databaseID:           databaseID,
		ingredientRepository: ingredientRepository,
	}
}

// List returns recipes newest-created-first. All supplied filters are
// AND-combined: category equality, one contains-condition per tag, and a
// substring match on the title.
func (r *recipeRepository) List(ctx context.Context, filters domain.RecipeFilters) ([]entities.Recipe, error) {
	var conditions []notion.Filter

	if filters.Category != "" {
		conditions = append(conditions, notion.Filter{
			Property: "Category",
			Select:   &notion.SelectCondition{Equals: filters.Category},
		})
	}
	for _, tag := range filters.Tags {
		conditions = append(conditions, notion.Filter{
			Property:    "Tags",
			MultiSelect: &notion.MultiSelectCondition{Contains: tag},
		})
	}
	if filters.Search != "" {
		conditions = append(conditions, notion.Filter{
			Property: "Name",
			Title:    &notion.TextCondition{Contains: filters.Search},
		})
	}

	req := notion.QueryRequest{
		Sorts: []notion.Sort{{Timestamp: notion.TimestampCreatedTime, Direction: notion.SortDescending}},
	}
	if len(conditions) > 0 {
		req.Filter = &notion.Filter{And: conditions}
	}

	res, err := r.client.QueryDatabase(ctx, r.databaseID, req)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return r.resolveRecipes(ctx, res.Results)
}

func (r *recipeRepository) GetByID(ctx context.Context, id string) (entities.Recipe, error) {
	page, err := r.client.RetrievePage(ctx, id)
	if err != nil {
		return entities.Recipe{}, fmt.Errorf("get recipe %s: %w", id, err)
	}
	return r.resolveRecipe(ctx, page)
}

// Create establishes the ingredient relation links without checking that the
// referenced ids exist; a dangling id simply resolves to an empty name and
// unit on later reads.
func (r *recipeRepository) Create(ctx context.Context, req domain.CreateRecipeRequest) (entities.Recipe, error) {
	page, err := r.client.CreatePage(ctx, notion.CreatePageRequest{
		Parent: notion.Parent{DatabaseID: r.databaseID},
		Properties: notion.Properties{
			"Name":         notion.NewTitle(req.Title),
			"Description":  notion.NewText(req.Description),
			"ImageURL":     notion.NewURL(req.ImageURL),
			"Category":     notion.NewSelect(req.Category),
			"Tags":         notion.NewMultiSelect(req.Tags),
			"Servings":     notion.NewNumber(float64(req.Servings)),
			"PrepTime":     notion.NewNumber(float64(req.PrepTime)),
			"CookTime":     notion.NewNumber(float64(req.CookTime)),
			"Instructions": notion.NewText(formatInstructions(req.Instructions)),
			"SourceURL":    notion.NewURL(req.SourceURL),
			"SourceType":   notion.NewSelect(req.SourceType),
			"Ingredients":  notion.NewRelation(ingredientIDs(req.Ingredients)),
		},
	})
	if err != nil {
		return entities.Recipe{}, fmt.Errorf("create recipe: %w", err)
	}
	return r.resolveRecipe(ctx, page)
}

// Update translates only the non-nil fields into property patch entries;
// everything else keeps its stored value.
func (r *recipeRepository) Update(ctx context.Context, id string, req domain.UpdateRecipeRequest) (entities.Recipe, error) {
	props := notion.Properties{}

	if req.Title != nil {
		props["Name"] = notion.NewTitle(*req.Title)
	}
	if req.Description != nil {
		props["Description"] = notion.NewText(*req.Description)
	}
	if req.ImageURL != nil {
		props["ImageURL"] = notion.NewURL(*req.ImageURL)
	}
	if req.Category != nil {
		props["Category"] = notion.NewSelect(*req.Category)
	}
	if req.Tags != nil {
		props["Tags"] = notion.NewMultiSelect(*req.Tags)
	}
	if req.Servings != nil {
		props["Servings"] = notion.NewNumber(float64(*req.Servings))
	}
	if req.PrepTime != nil {
		props["PrepTime"] = notion.NewNumber(float64(*req.PrepTime))
	}
	if req.CookTime != nil {
		props["CookTime"] = notion.NewNumber(float64(*req.CookTime))
	}
	if req.Instructions != nil {
		props["Instructions"] = notion.NewText(formatInstructions(*req.Instructions))
	}
	if req.SourceURL != nil {
		props["SourceURL"] = notion.NewURL(*req.SourceURL)
	}
	if req.SourceType != nil {
		props["SourceType"] = notion.NewSelect(*req.SourceType)
	}
	if req.Ingredients != nil {
		props["Ingredients"] = notion.NewRelation(ingredientIDs(*req.Ingredients))
	}

	page, err := r.client.UpdatePage(ctx, id, notion.UpdatePageRequest{Properties: props})
	if err != nil {
		return entities.Recipe{}, fmt.Errorf("update recipe %s: %w", id, err)
	}
	return r.resolveRecipe(ctx, page)
}

// Delete soft-archives the recipe; archived pages are excluded from every
// subsequent query by the store.
func (r *recipeRepository) Delete(ctx context.Context, id string) error {
	archived := true
	if _, err := r.client.UpdatePage(ctx, id, notion.UpdatePageRequest{Archived: &archived}); err != nil {
		return fmt.Errorf("archive recipe %s: %w", id, err)
	}
	return nil
}

// ListByIngredients is the one disjunctive filter entry point: a recipe
// matches if it references ANY of the given ids. An empty input means "no
// filter" and returns the full list, not an empty result.
func (r *recipeRepository) ListByIngredients(ctx context.Context, ingredientIDs []string) ([]entities.Recipe, error) {
	if len(ingredientIDs) == 0 {
		return r.List(ctx, domain.RecipeFilters{})
	}

	conditions := make([]notion.Filter, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		conditions = append(conditions, notion.Filter{
			Property: "Ingredients",
			Relation: &notion.RelationCondition{Contains: id},
		})
	}

	res, err := r.client.QueryDatabase(ctx, r.databaseID, notion.QueryRequest{
		Filter: &notion.Filter{Or: conditions},
		Sorts:  []notion.Sort{{Timestamp: notion.TimestampCreatedTime, Direction: notion.SortDescending}},
	})
	if err != nil {
		return nil, fmt.Errorf("list recipes by ingredients: %w", err)
	}
	return r.resolveRecipes(ctx, res.Results)
}

// GetCategories reads the allowed options from the category property's
// schema definition, not from row data. A missing property or an empty
// option list yields an empty slice, never an error.
func (r *recipeRepository) GetCategories(ctx context.Context) ([]string, error) {
	db, err := r.client.RetrieveDatabase(ctx, r.databaseID)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	prop, ok := db.Properties["Category"]
	if !ok || prop.Select == nil {
		return []string{}, nil
	}
	return optionNames(prop.Select.Options), nil
}

func (r *recipeRepository) GetTags(ctx context.Context) ([]string, error) {
	db, err := r.client.RetrieveDatabase(ctx, r.databaseID)
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}

	prop, ok := db.Properties["Tags"]
	if !ok || prop.MultiSelect == nil {
		return []string{}, nil
	}
	return optionNames(prop.MultiSelect.Options), nil
}

// resolveRecipes fetches the full ingredient list once and resolves every
// recipe's relation references against it, one batch join instead of a
// lookup per recipe.
func (r *recipeRepository) resolveRecipes(ctx context.Context, pages []notion.Page) ([]entities.Recipe, error) {
	lookup, err := r.ingredientLookup(ctx)
	if err != nil {
		return nil, err
	}

	recipes := make([]entities.Recipe, 0, len(pages))
	for _, page := range pages {
		recipes = append(recipes, toRecipe(page, lookup))
	}
	return recipes, nil
}

func (r *recipeRepository) resolveRecipe(ctx context.Context, page notion.Page) (entities.Recipe, error) {
	lookup, err := r.ingredientLookup(ctx)
	if err != nil {
		return entities.Recipe{}, err
	}
	return toRecipe(page, lookup), nil
}

func (r *recipeRepository) ingredientLookup(ctx context.Context) (map[string]entities.Ingredient, error) {
	ingredients, err := r.ingredientRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve ingredients: %w", err)
	}

	lookup := make(map[string]entities.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		lookup[ing.ID] = ing
	}
	return lookup, nil
}

func toRecipe(page notion.Page, lookup map[string]entities.Ingredient) entities.Recipe {
	props := page.Properties

	relationIDs := notion.RelationIDs(props["Ingredients"].Relation)
	used := make([]entities.RecipeIngredient, 0, len(relationIDs))
	for _, id := range relationIDs {
		// An id missing from the lookup degrades to empty name/unit.
		ing := lookup[id]
		used = append(used, entities.RecipeIngredient{
			IngredientID: id,
			Name:         ing.Name,
			Amount:       "",
			Unit:         ing.Unit,
		})
	}

	return entities.Recipe{
		ID:           page.ID,
		Title:        notion.PlainText(props["Name"].Title),
		Description:  notion.PlainText(props["Description"].RichText),
		ImageURL:     notion.URLValue(props["ImageURL"].URL),
		Category:     notion.SelectName(props["Category"].Select),
		Tags:         notion.MultiSelectNames(props["Tags"].MultiSelect),
		Servings:     int(notion.NumberValue(props["Servings"].Number)),
		PrepTime:     int(notion.NumberValue(props["PrepTime"].Number)),
		CookTime:     int(notion.NumberValue(props["CookTime"].Number)),
		Ingredients:  used,
		Instructions: parseInstructions(notion.PlainText(props["Instructions"].RichText)),
		SourceURL:    notion.URLValue(props["SourceURL"].URL),
		SourceType:   notion.SelectName(props["SourceType"].Select),
		CreatedAt:    page.CreatedTime,
		UpdatedAt:    page.LastEditedTime,
	}
}

func ingredientIDs(reqs []domain.RecipeIngredientRequest) []string {
	ids := make([]string, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.IngredientID)
	}
	return ids
}

func optionNames(options []notion.SelectOption) []string {
	names := make([]string, 0, len(options))
	for _, option := range options {
		names = append(names, option.Name)
	}
	return names
}
