package drink

import (
	"context"
	"errors"

	"github.com/cocktails-rolodex/cocktails-api/internal/audit"
	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/drink"
	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/httperr"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

type CreateDrinkInput struct {
	UserID      string
	Name        string
	Directions  string
	Serves      int
	Notes       string
	Published   bool
	Ingredients []domain.IngredientLine
}

type CreateDrink struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateDrink(
	repo domain.Repository,
	audit audit.Recorder,
) *CreateDrink {
	return &CreateDrink{
		repo:  repo,
		audit: audit,
	}
}

// Execute returns the drink with its raw ingredient link rows.
func (uc *CreateDrink) Execute(
	ctx context.Context,
	in CreateDrinkInput,
) (*models.Drink, error) {

	// --------------------------------------------------
	// Owner
	// --------------------------------------------------
	owner, err := uc.repo.FindOwner(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, httperr.ErrNotFound("User", in.UserID)
		}
		return nil, err
	}

	if err := domain.CheckLines(in.Ingredients); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Name is unique among the owner's active drinks
	// --------------------------------------------------
	_, err = uc.repo.FindActiveByOwnerAndName(ctx, owner.ID, in.Name)
	switch {
	case err == nil:
		return nil, domain.ErrNameTaken(owner.Name, in.Name)
	case !errors.Is(err, record.ErrNotFound):
		return nil, err
	}

	serves := in.Serves
	if serves <= 0 {
		serves = 1
	}

	d := &models.Drink{
		Name:       in.Name,
		Directions: in.Directions,
		Serves:     serves,
		Notes:      in.Notes,
		Published:  in.Published,
		UserID:     owner.ID,
	}

	if err := uc.repo.Create(ctx, d, in.Ingredients); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, domain.ErrNameTaken(owner.Name, in.Name)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "drink_created",
		Entity:   "drink",
		EntityID: d.ID,
		Metadata: map[string]any{
			"user_id":     owner.ID,
			"ingredients": len(in.Ingredients),
		},
	})

	return d, nil
}
