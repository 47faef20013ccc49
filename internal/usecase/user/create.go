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

type CreateUserInput struct {
	Name  string
	Email string
	Role  string
}

type CreateUser struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateUser(
	repo domain.Repository,
	audit audit.Recorder,
) *CreateUser {
	return &CreateUser{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateUser) Execute(
	ctx context.Context,
	in CreateUserInput,
) (*models.User, error) {

	role, err := domain.NormalizeRole(in.Role)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Name + email must be free among active users
	// --------------------------------------------------
	_, err = uc.repo.FindActiveByNameAndEmail(ctx, in.Name, in.Email)
	switch {
	case err == nil:
		return nil, domain.ErrAlreadyExists()
	case !errors.Is(err, record.ErrNotFound):
		return nil, err
	}

	u := &models.User{
		Name:  in.Name,
		Email: in.Email,
		Role:  role,
	}

	// the unique index catches a concurrent signup that passed the check above
	if err := uc.repo.Create(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists()
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "user_created",
		Entity:   "user",
		EntityID: u.ID,
	})

	return u, nil
}
