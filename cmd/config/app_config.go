package config

import (
	"Recipe-Catalog-Backend/internal/api/handlers"
	"Recipe-Catalog-Backend/internal/api/routes"
	"Recipe-Catalog-Backend/internal/middleware"
	"Recipe-Catalog-Backend/internal/utils"
	"Recipe-Catalog-Backend/internal/utils/storage"
	"Recipe-Catalog-Backend/pkg/ingredient"
	"Recipe-Catalog-Backend/pkg/notion"
	"Recipe-Catalog-Backend/pkg/recipe"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func NewApp(store *notion.Client) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Seoul",
		Output:     file,
	}))

	app.Use(recover.New())

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	ingredientRepository := ingredient.NewIngredientRepository(store, utils.GetConfig("NOTION_INGREDIENTS_DB_ID"))
	recipeRepository := recipe.NewRecipeRepository(store, utils.GetConfig("NOTION_RECIPES_DB_ID"), ingredientRepository)

	// Service
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RecipeHandler:     recipeHandler,
		IngredientHandler: ingredientHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
