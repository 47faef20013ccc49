package ingredient

import (
	"context"

	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

const EntityName = "Ingredient"

// DrinkRef is an active drink referencing an ingredient.
type DrinkRef struct {
	IngredientID string
	ID           string
	Name         string
}

// Repository returns record.ErrNotFound when a lookup has no match.
type Repository interface {
	List(
		ctx context.Context,
		params record.ListParams,
	) ([]models.Ingredient, error)

	Get(
		ctx context.Context,
		id string,
	) (*models.Ingredient, error)

	// ActiveDrinks returns the drinks that are not soft-deleted and reference
	// any of the given ingredients, ordered by drink name.
	ActiveDrinks(
		ctx context.Context,
		ingredientIDs []string,
	) ([]DrinkRef, error)
}
