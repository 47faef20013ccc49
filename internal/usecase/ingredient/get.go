package ingredient

import (
	"context"
	"errors"

	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/ingredient"
	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/dto"
	"github.com/cocktails-rolodex/cocktails-api/internal/httperr"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

type GetIngredient struct {
	repo domain.Repository
}

func NewGetIngredient(repo domain.Repository) *GetIngredient {
	return &GetIngredient{repo: repo}
}

func (uc *GetIngredient) Execute(
	ctx context.Context,
	id string,
) (*dto.IngredientWithDrinks, error) {

	i, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, httperr.ErrNotFound(domain.EntityName, id)
		}
		return nil, err
	}

	out, err := withDrinks(ctx, uc.repo, []models.Ingredient{*i})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}
