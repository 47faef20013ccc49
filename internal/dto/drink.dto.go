package dto

import "github.com/cocktails-rolodex/cocktails-api/internal/models"

type IngredientName struct {
	Name string `json:"name"`
}

// DrinkListItem reduces each ingredient to its canonical name.
type DrinkListItem struct {
	models.Drink
	Ingredients []IngredientName `json:"ingredients"`
}

type IngredientLine struct {
	Name       string `json:"name"`
	Amount     string `json:"amount"`
	AmountUnit string `json:"amount_unit"`
}

// DrinkDetail carries ingredients resolved for display.
type DrinkDetail struct {
	models.Drink
	Ingredients []IngredientLine `json:"ingredients"`
}
