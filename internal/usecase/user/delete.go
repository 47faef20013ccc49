package user

import (
	"context"
	"errors"

	"github.com/cocktails-rolodex/cocktails-api/internal/audit"
	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/user"
	"github.com/cocktails-rolodex/cocktails-api/internal/httperr"
)

type DeleteUser struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteUser(
	repo domain.Repository,
	audit audit.Recorder,
) *DeleteUser {
	return &DeleteUser{
		repo:  repo,
		audit: audit,
	}
}

// Execute soft-deletes the user. A second call leaves deleted_at untouched
// and reports the existing deletion.
func (uc *DeleteUser) Execute(
	ctx context.Context,
	id string,
) (record.DeleteOutcome, error) {

	u, err := uc.repo.GetIncludingDeleted(ctx, id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return record.DeleteOutcome{}, httperr.ErrNotFound(domain.EntityName, id)
		}
		return record.DeleteOutcome{}, err
	}

	if record.StateOf(u.DeletedAt) == record.StateDeleted {
		return record.AlreadyDeleted(domain.DeletedNotice(u.Name)), nil
	}

	deleted, err := uc.repo.SoftDelete(ctx, u)
	if err != nil {
		return record.DeleteOutcome{}, err
	}
	if !deleted {
		return record.AlreadyDeleted(domain.DeletedNotice(u.Name)), nil
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: u.ID,
	})

	return record.Deleted(domain.DeletedSuccess(u.Name)), nil
}
