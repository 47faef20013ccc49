package drink

import (
	"context"

	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

// Repository returns record.ErrNotFound when a lookup has no match.
type Repository interface {
	// -------- Owner --------
	FindOwner(
		ctx context.Context,
		userID string,
	) (*models.User, error)

	// -------- Read --------
	// List returns active drinks with ingredient rows and their ingredient preloaded.
	List(
		ctx context.Context,
		params record.ListParams,
	) ([]models.Drink, error)

	// GetIncludingDeleted loads a drink with ingredients regardless of its state.
	GetIncludingDeleted(
		ctx context.Context,
		id string,
	) (*models.Drink, error)

	Get(
		ctx context.Context,
		id string,
	) (*models.Drink, error)

	FindActiveByOwnerAndName(
		ctx context.Context,
		userID string,
		name string,
	) (*models.Drink, error)

	// -------- Write --------
	// Create inserts the drink, finds or creates every ingredient by name and
	// links them, all in one transaction.
	Create(
		ctx context.Context,
		d *models.Drink,
		lines []IngredientLine,
	) error

	Update(
		ctx context.Context,
		id string,
		fields map[string]any,
	) (*models.Drink, error)

	SoftDelete(
		ctx context.Context,
		d *models.Drink,
	) (bool, error)
}
