package recipe

import (
	"Recipe-Catalog-Backend/domain"
	"Recipe-Catalog-Backend/entities"
	"Recipe-Catalog-Backend/pkg/notion"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRecipeRepository returns canned values; tests override only the
// fields they care about.
type stubRecipeRepository struct {
	recipe     entities.Recipe
	recipes    []entities.Recipe
	categories []string
	tags       []string
	err        error
	deleted    []string
}

func (s *stubRecipeRepository) List(ctx context.Context, filters domain.RecipeFilters) ([]entities.Recipe, error) {
	return s.recipes, s.err
}

func (s *stubRecipeRepository) GetByID(ctx context.Context, id string) (entities.Recipe, error) {
	return s.recipe, s.err
}

func (s *stubRecipeRepository) Create(ctx context.Context, req domain.CreateRecipeRequest) (entities.Recipe, error) {
	return s.recipe, s.err
}

func (s *stubRecipeRepository) Update(ctx context.Context, id string, req domain.UpdateRecipeRequest) (entities.Recipe, error) {
	return s.recipe, s.err
}

func (s *stubRecipeRepository) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

func (s *stubRecipeRepository) ListByIngredients(ctx context.Context, ingredientIDs []string) ([]entities.Recipe, error) {
	return s.recipes, s.err
}

func (s *stubRecipeRepository) GetCategories(ctx context.Context) ([]string, error) {
	return s.categories, s.err
}

func (s *stubRecipeRepository) GetTags(ctx context.Context) ([]string, error) {
	return s.tags, s.err
}

func TestRecipeService_GetRecipeByID(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{
			name:    "found",
			repoErr: nil,
			wantErr: nil,
		},
		{
			name:    "missing record",
			repoErr: fmt.Errorf("get recipe rec-1: %w", notion.ErrNotFound),
			wantErr: domain.ErrRecipeNotFound,
		},
		{
			// upstream outages collapse to the same not-found answer
			name:    "store unavailable",
			repoErr: fmt.Errorf("get recipe rec-1: %w", notion.ErrServer),
			wantErr: domain.ErrRecipeNotFound,
		},
		{
			name:    "rate limited",
			repoErr: fmt.Errorf("get recipe rec-1: %w", notion.ErrRateLimited),
			wantErr: domain.ErrRecipeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRecipeRepository{
				recipe: entities.Recipe{ID: "rec-1", Title: "김치찌개"},
				err:    tt.repoErr,
			}
			service := NewRecipeService(repo, nil)

			rec, err := service.GetRecipeByID(context.Background(), "rec-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "김치찌개", rec.Title)
		})
	}
}

func TestRecipeService_UpdateRecipe(t *testing.T) {
	t.Run("missing record", func(t *testing.T) {
		repo := &stubRecipeRepository{err: fmt.Errorf("update recipe rec-1: %w", notion.ErrNotFound)}
		service := NewRecipeService(repo, nil)

		_, err := service.UpdateRecipe(context.Background(), "rec-1", domain.UpdateRecipeRequest{})
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("upstream failure stays an upstream failure", func(t *testing.T) {
		repo := &stubRecipeRepository{err: fmt.Errorf("update recipe rec-1: %w", notion.ErrServer)}
		service := NewRecipeService(repo, nil)

		_, err := service.UpdateRecipe(context.Background(), "rec-1", domain.UpdateRecipeRequest{})
		assert.ErrorIs(t, err, notion.ErrServer)
		assert.NotErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	t.Run("archives by id", func(t *testing.T) {
		repo := &stubRecipeRepository{}
		service := NewRecipeService(repo, nil)

		require.NoError(t, service.DeleteRecipe(context.Background(), "rec-1"))
		assert.Equal(t, []string{"rec-1"}, repo.deleted)
	})

	t.Run("missing record", func(t *testing.T) {
		repo := &stubRecipeRepository{err: fmt.Errorf("archive recipe rec-1: %w", notion.ErrNotFound)}
		service := NewRecipeService(repo, nil)

		assert.ErrorIs(t, service.DeleteRecipe(context.Background(), "rec-1"), domain.ErrRecipeNotFound)
	})
}

func TestRecipeService_GetMetadata(t *testing.T) {
	t.Run("merges both option lists", func(t *testing.T) {
		repo := &stubRecipeRepository{
			categories: []string{"한식", "양식"},
			tags:       []string{"매운맛"},
		}
		service := NewRecipeService(repo, nil)

		meta, err := service.GetMetadata(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"한식", "양식"}, meta.Categories)
		assert.Equal(t, []string{"매운맛"}, meta.Tags)
	})

	t.Run("propagates a schema read failure", func(t *testing.T) {
		repo := &stubRecipeRepository{err: errors.New("schema read failed")}
		service := NewRecipeService(repo, nil)

		_, err := service.GetMetadata(context.Background())
		assert.Error(t, err)
	})
}
