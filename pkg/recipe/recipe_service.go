package recipe

import (
	"Recipe-Catalog-Backend/domain"
	"Recipe-Catalog-Backend/entities"
	"Recipe-Catalog-Backend/internal/utils/storage"
	"Recipe-Catalog-Backend/pkg/notion"
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, filters domain.RecipeFilters) ([]entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id string) (entities.Recipe, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipesByIngredients(ctx context.Context, ingredientIDs []string) ([]entities.Recipe, error)
		GetMetadata(ctx context.Context) (domain.RecipeMetadataResponse, error)
		UploadRecipeImage(ctx context.Context, image *multipart.FileHeader) (domain.UploadRecipeImageResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, filters domain.RecipeFilters) ([]entities.Recipe, error) {
	return s.recipeRepository.List(ctx, filters)
}

// GetRecipeByID collapses every retrieval failure to "not found". Upstream
// failures are logged before the collapse so a store outage stays visible
// server-side even though the caller sees an absent record.
func (s *recipeService) GetRecipeByID(ctx context.Context, id string) (entities.Recipe, error) {
	rec, err := s.recipeRepository.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, notion.ErrNotFound) {
			log.Errorf("recipe lookup failed: %v", err)
		}
		return entities.Recipe{}, domain.ErrRecipeNotFound
	}
	return rec, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (entities.Recipe, error) {
	return s.recipeRepository.Create(ctx, req)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (entities.Recipe, error) {
	rec, err := s.recipeRepository.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, notion.ErrNotFound) {
			return entities.Recipe{}, domain.ErrRecipeNotFound
		}
		return entities.Recipe{}, err
	}
	return rec, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	if err := s.recipeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, notion.ErrNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) GetRecipesByIngredients(ctx context.Context, ingredientIDs []string) ([]entities.Recipe, error) {
	return s.recipeRepository.ListByIngredients(ctx, ingredientIDs)
}

// GetMetadata fetches the category and tag option lists in parallel; the two
// schema reads are independent of each other.
func (s *recipeService) GetMetadata(ctx context.Context) (domain.RecipeMetadataResponse, error) {
	var res domain.RecipeMetadataResponse

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		categories, err := s.recipeRepository.GetCategories(ctx)
		if err != nil {
			return err
		}
		res.Categories = categories
		return nil
	})
	g.Go(func() error {
		tags, err := s.recipeRepository.GetTags(ctx)
		if err != nil {
			return err
		}
		res.Tags = tags
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.RecipeMetadataResponse{}, err
	}
	return res, nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, image *multipart.FileHeader) (domain.UploadRecipeImageResponse, error) {
	fileName := fmt.Sprintf("recipe-%s", uuid.New().String())

	objectKey, err := s.s3.UploadFile(fileName, image, "recipes", storage.AllowImage...)
	if err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}

	return domain.UploadRecipeImageResponse{
		ImageURL: s.s3.GetPublicLinkKey(objectKey),
	}, nil
}
