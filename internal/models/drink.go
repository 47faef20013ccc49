package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Drink names are unique per owner among drinks that are not soft-deleted.
type Drink struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	Name       string `gorm:"size:191;not null;uniqueIndex:idx_drinks_user_name,priority:2,where:deleted_at IS NULL" json:"name"`
	Directions string `gorm:"type:text" json:"directions"`
	Serves     int    `gorm:"default:1" json:"serves"`
	Notes      string `gorm:"type:text" json:"notes"`
	Published  bool   `gorm:"default:false" json:"published"`

	UserID string `gorm:"size:36;not null;uniqueIndex:idx_drinks_user_name,priority:1,where:deleted_at IS NULL" json:"userId"`

	Ingredients []IngredientOnDrink `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"ingredients,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`
}

func (d *Drink) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
