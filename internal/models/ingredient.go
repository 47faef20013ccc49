package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ingredient struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"size:191;not null;uniqueIndex" json:"name"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// IngredientOnDrink links a drink to an ingredient and carries the measure.
// Rows are written together with their drink and never edited afterwards.
type IngredientOnDrink struct {
	DrinkID      string `gorm:"primaryKey;size:36" json:"drinkId"`
	IngredientID string `gorm:"primaryKey;size:36" json:"ingredientId"`

	Amount     string  `gorm:"size:50;not null" json:"amount"`
	AmountUnit *string `gorm:"size:50" json:"amount_unit"`
	Brand      *string `gorm:"size:100" json:"brand"`
	Garnish    bool    `gorm:"default:false" json:"garnish"`

	Ingredient *Ingredient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"ingredient,omitempty"`
}

func (IngredientOnDrink) TableName() string {
	return "ingredients_on_drinks"
}
