package dto

import "github.com/cocktails-rolodex/cocktails-api/internal/models"

type IngredientWithDrinks struct {
	models.Ingredient
	Drinks []DrinkSummary `json:"drinks"`
}
