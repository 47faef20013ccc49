package user

import (
	"context"
	"errors"

	"github.com/cocktails-rolodex/cocktails-api/internal/audit"
	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/user"
	"github.com/cocktails-rolodex/cocktails-api/internal/httperr"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

type UpdateUser struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateUser(
	repo domain.Repository,
	audit audit.Recorder,
) *UpdateUser {
	return &UpdateUser{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateUser) Execute(
	ctx context.Context,
	id string,
	patch domain.Patch,
) (*models.User, error) {

	if patch.Role != nil {
		role, err := domain.NormalizeRole(*patch.Role)
		if err != nil {
			return nil, err
		}
		patch.Role = &role
	}

	// Update reports record.ErrNotFound for missing and soft-deleted users
	fields := patch.Fields()

	u, err := uc.repo.Update(ctx, id, fields)
	if err != nil {
		switch {
		case httperr.IsUniqueViolation(err):
			return nil, domain.ErrAlreadyExists()
		case errors.Is(err, record.ErrNotFound):
			return nil, httperr.ErrNotFound(domain.EntityName, id)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "user_updated",
		Entity:   "user",
		EntityID: u.ID,
		Metadata: fields,
	})

	return u, nil
}
