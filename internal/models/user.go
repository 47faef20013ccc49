package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is unique on (name, email) among rows that are not soft-deleted.
type User struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"size:100;not null;uniqueIndex:idx_users_name_email,where:deleted_at IS NULL" json:"name"`
	Email string `gorm:"size:100;not null;uniqueIndex:idx_users_name_email,where:deleted_at IS NULL" json:"email"`
	Role  string `gorm:"size:20;default:'USER'" json:"role"`

	Drinks []Drink `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}
