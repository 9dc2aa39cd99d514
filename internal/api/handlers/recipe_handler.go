package handlers

import (
	"Recipe-Catalog-Backend/domain"
	"Recipe-Catalog-Backend/internal/api/presenters"
	"Recipe-Catalog-Backend/internal/utils/storage"
	"Recipe-Catalog-Backend/pkg/recipe"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		UploadRecipeImage(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	// meta=true skips the recipe query and returns the category/tag lists.
	if c.QueryBool("meta", false) {
		meta, err := h.recipeService.GetMetadata(c.Context())
		if err != nil {
			return respondError(c, domain.MessageFailedGetMetadata, err)
		}
		return presenters.SuccessResponse(c, meta, fiber.StatusOK, domain.MessageSuccessGetMetadata)
	}

	if ingredients := c.Query("ingredients"); ingredients != "" {
		res, err := h.recipeService.GetRecipesByIngredients(c.Context(), strings.Split(ingredients, ","))
		if err != nil {
			return respondError(c, domain.MessageFailedGetRecipes, err)
		}
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
	}

	filters := domain.RecipeFilters{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if tags := c.Query("tags"); tags != "" {
		filters.Tags = strings.Split(tags, ",")
	}

	res, err := h.recipeService.GetRecipes(c.Context(), filters)
	if err != nil {
		return respondError(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.recipeService.GetRecipeByID(c.Context(), recipeID)
	if err != nil {
		return respondError(c, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return respondError(c, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), recipeID, *req)
	if err != nil {
		return respondError(c, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID); err != nil {
		return respondError(c, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.recipeService.UploadRecipeImage(c.Context(), file)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadRecipeImage, domain.ErrInvalidImageFormat)
		}
		return respondError(c, domain.MessageFailedUploadRecipeImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadRecipeImage)
}

// respondError maps domain sentinels to 404 and everything else to a generic
// 500; upstream detail is logged server-side only.
func respondError(c *fiber.Ctx, message string, err error) error {
	if errors.Is(err, domain.ErrRecipeNotFound) || errors.Is(err, domain.ErrIngredientNotFound) {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	}

	log.Errorf("%s: %v", message, err)
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, domain.ErrUpstream)
}
