package drink

import (
	"context"
	"errors"

	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/drink"
	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/dto"
	"github.com/cocktails-rolodex/cocktails-api/internal/httperr"
)

// GetResult is either a live drink or the notice for a deleted one.
type GetResult struct {
	State  record.State
	Notice string
	Drink  *dto.DrinkDetail
}

func (r GetResult) Deleted() bool {
	return r.State == record.StateDeleted
}

type GetDrink struct {
	repo domain.Repository
}

func NewGetDrink(repo domain.Repository) *GetDrink {
	return &GetDrink{repo: repo}
}

func (uc *GetDrink) Execute(
	ctx context.Context,
	id string,
) (GetResult, error) {

	d, err := uc.repo.GetIncludingDeleted(ctx, id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return GetResult{}, httperr.ErrNotFound(domain.EntityName, id)
		}
		return GetResult{}, err
	}

	if record.StateOf(d.DeletedAt) == record.StateDeleted {
		return GetResult{
			State:  record.StateDeleted,
			Notice: domain.DeletedNotice(d.Name),
		}, nil
	}

	lines := make([]dto.IngredientLine, 0, len(d.Ingredients))
	for _, line := range d.Ingredients {
		lines = append(lines, dto.IngredientLine{
			Name:       domain.DisplayName(line),
			Amount:     line.Amount,
			AmountUnit: domain.AmountUnit(line),
		})
	}

	return GetResult{
		State: record.StateActive,
		Drink: &dto.DrinkDetail{Drink: *d, Ingredients: lines},
	}, nil
}
