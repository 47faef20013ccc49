package dto

import "github.com/cocktails-rolodex/cocktails-api/internal/models"

type DrinkSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserWithDrinks struct {
	models.User
	Drinks []DrinkSummary `json:"drinks"`
}

func NewUserWithDrinks(u models.User) UserWithDrinks {
	drinks := make([]DrinkSummary, 0, len(u.Drinks))
	for _, d := range u.Drinks {
		drinks = append(drinks, DrinkSummary{ID: d.ID, Name: d.Name})
	}
	return UserWithDrinks{User: u, Drinks: drinks}
}
