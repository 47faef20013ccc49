package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/user"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// drink summaries only; soft-deleted drinks are filtered by gorm
func preloadDrinkSummaries(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "user_id").Order("name ASC")
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *UserGormRepository) List(
	ctx context.Context,
	order record.Order,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Preload("Drinks", preloadDrinkSummaries).
		Order(order.NameClause()).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserGormRepository) Get(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Preload("Drinks", preloadDrinkSummaries).
		Where("id = ?", id).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserGormRepository) GetIncludingDeleted(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Unscoped().
		Where("id = ?", id).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserGormRepository) FindActiveByNameAndEmail(
	ctx context.Context,
	name string,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("name = ? AND email = ?", name, email).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserGormRepository) Update(
	ctx context.Context,
	id string,
	fields map[string]any,
) (*models.User, error) {

	if len(fields) > 0 {
		res := r.db.WithContext(ctx).
			Model(&models.User{}).
			Where("id = ?", id).
			Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
	}

	return r.Get(ctx, id)
}

func (r *UserGormRepository) SoftDelete(
	ctx context.Context,
	u *models.User,
) (bool, error) {

	res := r.db.WithContext(ctx).Delete(u)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
