package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/ingredient"
	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

type IngredientGormRepository struct {
	db *gorm.DB
}

func NewIngredientGormRepository(db *gorm.DB) *IngredientGormRepository {
	return &IngredientGormRepository{db: db}
}

func (r *IngredientGormRepository) List(
	ctx context.Context,
	params record.ListParams,
) ([]models.Ingredient, error) {

	q := r.db.WithContext(ctx).Model(&models.Ingredient{})

	if params.Search != "" {
		q = q.Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, record.LikePattern(params.Search))
	}
	if params.Take > 0 {
		q = q.Limit(params.Take)
	}
	if params.Skip > 0 {
		q = q.Offset(params.Skip)
	}

	var ingredients []models.Ingredient
	if err := q.
		Order(params.Order.NameClause()).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *IngredientGormRepository) Get(
	ctx context.Context,
	id string,
) (*models.Ingredient, error) {

	var ing models.Ingredient
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ing).Error; err != nil {
		return nil, notFound(err)
	}
	return &ing, nil
}

func (r *IngredientGormRepository) ActiveDrinks(
	ctx context.Context,
	ingredientIDs []string,
) ([]domain.DrinkRef, error) {

	if len(ingredientIDs) == 0 {
		return nil, nil
	}

	var refs []domain.DrinkRef
	if err := r.db.WithContext(ctx).
		Table("ingredients_on_drinks").
		Select("ingredients_on_drinks.ingredient_id AS ingredient_id, drinks.id AS id, drinks.name AS name").
		Joins("JOIN drinks ON drinks.id = ingredients_on_drinks.drink_id").
		Where("ingredients_on_drinks.ingredient_id IN ? AND drinks.deleted_at IS NULL", ingredientIDs).
		Order("drinks.name ASC").
		Scan(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}

// Compile-time check
var _ domain.Repository = (*IngredientGormRepository)(nil)
