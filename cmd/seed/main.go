package main

import (
	"Recipe-Catalog-Backend/cmd/config"
	"Recipe-Catalog-Backend/domain"
	"Recipe-Catalog-Backend/internal/utils"
	"Recipe-Catalog-Backend/pkg/ingredient"
	"Recipe-Catalog-Backend/pkg/recipe"
	"context"
	"fmt"
	"log"
	"time"
)

// Seeds the configured databases with a starter ingredient set and one
// sample recipe.
func main() {
	utils.LoadConfig()

	store, err := config.ConnectStore()
	if err != nil {
		log.Fatalf("Store connection failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ingredientRepository := ingredient.NewIngredientRepository(store, utils.GetConfig("NOTION_INGREDIENTS_DB_ID"))
	recipeRepository := recipe.NewRecipeRepository(store, utils.GetConfig("NOTION_RECIPES_DB_ID"), ingredientRepository)

	staples := []domain.CreateIngredientRequest{
		{Name: "양파", Category: "채소", Unit: "개"},
		{Name: "대파", Category: "채소", Unit: "대"},
		{Name: "마늘", Category: "채소", Unit: "쪽"},
		{Name: "돼지고기 목살", Category: "육류", Unit: "g"},
		{Name: "김치", Category: "채소", Unit: "g"},
		{Name: "고춧가루", Category: "조미료", Unit: "g"},
		{Name: "간장", Category: "조미료", Unit: "ml"},
	}

	ids := make(map[string]string, len(staples))
	for _, req := range staples {
		created, err := ingredientRepository.Create(ctx, req)
		if err != nil {
			log.Fatalf("Error seeding ingredient %s: %v", req.Name, err)
		}
		ids[created.Name] = created.ID
		fmt.Printf("seeded ingredient %s (%s)\n", created.Name, created.ID)
	}

	sample := domain.CreateRecipeRequest{
		Title:       "김치찌개",
		Description: "잘 익은 김치로 끓이는 기본 김치찌개",
		Category:    "한식",
		Tags:        []string{"매운맛", "국물요리"},
		Servings:    2,
		PrepTime:    10,
		CookTime:    25,
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: ids["김치"], Amount: "300"},
			{IngredientID: ids["돼지고기 목살"], Amount: "200"},
			{IngredientID: ids["양파"], Amount: "1/2"},
			{IngredientID: ids["대파"], Amount: "1"},
		},
		Instructions: []string{
			"냄비에 돼지고기를 넣고 중불에서 볶는다",
			"김치와 고춧가루를 넣고 2분 더 볶는다",
			"물을 붓고 15분간 끓인다",
			"양파와 대파를 넣고 5분 더 끓인다",
		},
		SourceType: "original",
	}

	created, err := recipeRepository.Create(ctx, sample)
	if err != nil {
		log.Fatalf("Error seeding recipe: %v", err)
	}
	fmt.Printf("seeded recipe %s (%s)\n", created.Title, created.ID)

	fmt.Println("Seed complete")
}
