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

type UpdateDrink struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateDrink(
	repo domain.Repository,
	audit audit.Recorder,
) *UpdateDrink {
	return &UpdateDrink{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateDrink) Execute(
	ctx context.Context,
	id string,
	patch domain.Patch,
) (*models.Drink, error) {

	current, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, httperr.ErrNotFound(domain.EntityName, id)
		}
		return nil, err
	}

	fields := patch.Fields()

	d, err := uc.repo.Update(ctx, id, fields)
	if err != nil {
		switch {
		case httperr.IsUniqueViolation(err):
			name := current.Name
			if patch.Name != nil {
				name = *patch.Name
			}
			owner := current.UserID
			if u, ownerErr := uc.repo.FindOwner(ctx, current.UserID); ownerErr == nil {
				owner = u.Name
			}
			return nil, domain.ErrNameTaken(owner, name)
		case errors.Is(err, record.ErrNotFound):
			return nil, httperr.ErrNotFound(domain.EntityName, id)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "drink_updated",
		Entity:   "drink",
		EntityID: d.ID,
		Metadata: fields,
	})

	return d, nil
}
