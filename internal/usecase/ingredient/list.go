package ingredient

import (
	"context"

	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/ingredient"
	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/dto"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

type ListIngredients struct {
	repo domain.Repository
}

func NewListIngredients(repo domain.Repository) *ListIngredients {
	return &ListIngredients{repo: repo}
}

func (uc *ListIngredients) Execute(
	ctx context.Context,
	params record.ListParams,
) ([]dto.IngredientWithDrinks, error) {

	ingredients, err := uc.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return withDrinks(ctx, uc.repo, ingredients)
}

// withDrinks attaches the active drinks of every ingredient using a single
// lookup.
func withDrinks(
	ctx context.Context,
	repo domain.Repository,
	ingredients []models.Ingredient,
) ([]dto.IngredientWithDrinks, error) {

	ids := make([]string, 0, len(ingredients))
	for _, i := range ingredients {
		ids = append(ids, i.ID)
	}

	refs, err := repo.ActiveDrinks(ctx, ids)
	if err != nil {
		return nil, err
	}

	byIngredient := make(map[string][]dto.DrinkSummary, len(ingredients))
	for _, ref := range refs {
		byIngredient[ref.IngredientID] = append(
			byIngredient[ref.IngredientID],
			dto.DrinkSummary{ID: ref.ID, Name: ref.Name},
		)
	}

	out := make([]dto.IngredientWithDrinks, 0, len(ingredients))
	for _, i := range ingredients {
		drinks := byIngredient[i.ID]
		if drinks == nil {
			drinks = []dto.DrinkSummary{}
		}
		out = append(out, dto.IngredientWithDrinks{Ingredient: i, Drinks: drinks})
	}
	return out, nil
}
