package routes

import (
	"Recipe-Catalog-Backend/internal/api/handlers"
	"Recipe-Catalog-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.Ingredients()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	// reads are open; writes require the admin credential
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Post("", c.Middleware.AdminMiddleware(), c.RecipeHandler.CreateRecipe)
		recipes.Post("/image", c.Middleware.AdminMiddleware(), c.RecipeHandler.UploadRecipeImage)
		recipes.Patch("/:id", c.Middleware.AdminMiddleware(), c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.Middleware.AdminMiddleware(), c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients")
	{
		ingredients.Get("", c.IngredientHandler.GetIngredients)
		ingredients.Get("/:id", c.IngredientHandler.GetIngredientDetail)
		ingredients.Post("", c.Middleware.AdminMiddleware(), c.IngredientHandler.CreateIngredient)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
