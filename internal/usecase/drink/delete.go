package drink

import (
	"context"
	"errors"

	"github.com/cocktails-rolodex/cocktails-api/internal/audit"
	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/drink"
	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/httperr"
)

type DeleteDrink struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteDrink(
	repo domain.Repository,
	audit audit.Recorder,
) *DeleteDrink {
	return &DeleteDrink{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteDrink) Execute(
	ctx context.Context,
	id string,
) (record.DeleteOutcome, error) {

	d, err := uc.repo.GetIncludingDeleted(ctx, id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return record.DeleteOutcome{}, httperr.ErrNotFound(domain.EntityName, id)
		}
		return record.DeleteOutcome{}, err
	}

	if record.StateOf(d.DeletedAt) == record.StateDeleted {
		return record.AlreadyDeleted(domain.DeletedNotice(d.Name)), nil
	}

	deleted, err := uc.repo.SoftDelete(ctx, d)
	if err != nil {
		return record.DeleteOutcome{}, err
	}
	if !deleted {
		return record.AlreadyDeleted(domain.DeletedNotice(d.Name)), nil
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "drink_deleted",
		Entity:   "drink",
		EntityID: d.ID,
	})

	return record.Deleted(domain.DeletedSuccess), nil
}
