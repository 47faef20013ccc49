package user

import (
	"context"

	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

// Repository returns record.ErrNotFound when a lookup has no match.
type Repository interface {
	// -------- Read --------
	List(
		ctx context.Context,
		order record.Order,
	) ([]models.User, error)

	// Get loads an active user with its active drinks.
	Get(
		ctx context.Context,
		id string,
	) (*models.User, error)

	// GetIncludingDeleted ignores the soft-delete filter.
	GetIncludingDeleted(
		ctx context.Context,
		id string,
	) (*models.User, error)

	FindActiveByNameAndEmail(
		ctx context.Context,
		name string,
		email string,
	) (*models.User, error)

	// -------- Write --------
	Create(
		ctx context.Context,
		u *models.User,
	) error

	Update(
		ctx context.Context,
		id string,
		fields map[string]any,
	) (*models.User, error)

	// SoftDelete reports false when another caller deleted the row first.
	SoftDelete(
		ctx context.Context,
		u *models.User,
	) (bool, error)
}
