package ingredient

import (
	"Recipe-Catalog-Backend/domain"
	"Recipe-Catalog-Backend/entities"
	"Recipe-Catalog-Backend/pkg/notion"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIngredientRepository struct {
	ingredient  entities.Ingredient
	ingredients []entities.Ingredient
	err         error
}

func (s *stubIngredientRepository) List(ctx context.Context) ([]entities.Ingredient, error) {
	return s.ingredients, s.err
}

func (s *stubIngredientRepository) GetByID(ctx context.Context, id string) (entities.Ingredient, error) {
	return s.ingredient, s.err
}

func (s *stubIngredientRepository) Create(ctx context.Context, req domain.CreateIngredientRequest) (entities.Ingredient, error) {
	return s.ingredient, s.err
}

func TestIngredientService_GetIngredientByID(t *testing.T) {
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
			repoErr: fmt.Errorf("get ingredient ing-1: %w", notion.ErrNotFound),
			wantErr: domain.ErrIngredientNotFound,
		},
		{
			// upstream outages collapse to the same not-found answer
			name:    "store unavailable",
			repoErr: fmt.Errorf("get ingredient ing-1: %w", notion.ErrServer),
			wantErr: domain.ErrIngredientNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubIngredientRepository{
				ingredient: entities.Ingredient{ID: "ing-1", Name: "김치"},
				err:        tt.repoErr,
			}
			service := NewIngredientService(repo)

			ing, err := service.GetIngredientByID(context.Background(), "ing-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "김치", ing.Name)
		})
	}
}
