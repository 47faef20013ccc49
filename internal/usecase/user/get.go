package user

import (
	"context"
	"errors"

	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/user"
	"github.com/cocktails-rolodex/cocktails-api/internal/dto"
	"github.com/cocktails-rolodex/cocktails-api/internal/httperr"
)

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

// Execute returns the user with its active drinks. Soft-deleted users are
// reported as not found.
func (uc *GetUser) Execute(
	ctx context.Context,
	id string,
) (*dto.UserWithDrinks, error) {

	u, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, httperr.ErrNotFound(domain.EntityName, id)
		}
		return nil, err
	}

	out := dto.NewUserWithDrinks(*u)
	return &out, nil
}
