package user

import (
	"context"

	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/user"
	"github.com/cocktails-rolodex/cocktails-api/internal/dto"
)

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(
	ctx context.Context,
	order record.Order,
) ([]dto.UserWithDrinks, error) {

	users, err := uc.repo.List(ctx, order)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserWithDrinks, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserWithDrinks(u))
	}
	return out, nil
}
