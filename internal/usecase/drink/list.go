package drink

import (
	"context"

	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/drink"
	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/dto"
)

type ListDrinks struct {
	repo domain.Repository
}

func NewListDrinks(repo domain.Repository) *ListDrinks {
	return &ListDrinks{repo: repo}
}

func (uc *ListDrinks) Execute(
	ctx context.Context,
	params record.ListParams,
) ([]dto.DrinkListItem, error) {

	drinks, err := uc.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DrinkListItem, 0, len(drinks))
	for _, d := range drinks {
		names := make([]dto.IngredientName, 0, len(d.Ingredients))
		for _, line := range d.Ingredients {
			if line.Ingredient == nil {
				continue
			}
			names = append(names, dto.IngredientName{Name: line.Ingredient.Name})
		}

		out = append(out, dto.DrinkListItem{Drink: d, Ingredients: names})
	}
	return out, nil
}
