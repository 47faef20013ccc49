package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/drink"
	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

type DrinkGormRepository struct {
	db *gorm.DB
}

func NewDrinkGormRepository(db *gorm.DB) *DrinkGormRepository {
	return &DrinkGormRepository{db: db}
}

// --------------------------------------------------
// Owner
// --------------------------------------------------

func (r *DrinkGormRepository) FindOwner(
	ctx context.Context,
	userID string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *DrinkGormRepository) List(
	ctx context.Context,
	params record.ListParams,
) ([]models.Drink, error) {

	q := r.db.WithContext(ctx).
		Preload("Ingredients.Ingredient")

	if params.Search != "" {
		q = q.Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, record.LikePattern(params.Search))
	}
	if params.Take > 0 {
		q = q.Limit(params.Take)
	}
	if params.Skip > 0 {
		q = q.Offset(params.Skip)
	}

	var drinks []models.Drink
	if err := q.
		Order(params.Order.NameClause()).
		Order("id ASC").
		Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}

func (r *DrinkGormRepository) Get(
	ctx context.Context,
	id string,
) (*models.Drink, error) {

	var d models.Drink
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&d).Error; err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

func (r *DrinkGormRepository) GetIncludingDeleted(
	ctx context.Context,
	id string,
) (*models.Drink, error) {

	var d models.Drink
	if err := r.db.WithContext(ctx).
		Unscoped().
		Preload("Ingredients.Ingredient").
		Where("id = ?", id).
		First(&d).Error; err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

func (r *DrinkGormRepository) FindActiveByOwnerAndName(
	ctx context.Context,
	userID string,
	name string,
) (*models.Drink, error) {

	var d models.Drink
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&d).Error; err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *DrinkGormRepository) Create(
	ctx context.Context,
	d *models.Drink,
	lines []domain.IngredientLine,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(d).Error; err != nil {
			return err
		}

		links := make([]models.IngredientOnDrink, 0, len(lines))
		ingredients := make([]models.Ingredient, 0, len(lines))
		for _, line := range lines {
			ing, err := findOrCreateIngredient(tx, line.Name)
			if err != nil {
				return err
			}
			ingredients = append(ingredients, *ing)

			links = append(links, models.IngredientOnDrink{
				DrinkID:      d.ID,
				IngredientID: ing.ID,
				Amount:       line.Amount,
				AmountUnit:   nonEmpty(line.AmountUnit),
				Brand:        nonEmpty(line.Brand),
				Garnish:      line.Garnish,
			})
		}

		if len(links) > 0 {
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return err
			}
		}

		for i := range links {
			links[i].Ingredient = &ingredients[i]
		}
		d.Ingredients = links
		return nil
	})
}

// findOrCreateIngredient matches on the exact name. The insert is a no-op when
// a concurrent writer created the row first; the lookup returns it either way.
func findOrCreateIngredient(tx *gorm.DB, name string) (*models.Ingredient, error) {
	candidate := models.Ingredient{Name: name}
	if err := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&candidate).Error; err != nil {
		return nil, err
	}

	var ing models.Ingredient
	if err := tx.Where("name = ?", name).First(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *DrinkGormRepository) Update(
	ctx context.Context,
	id string,
	fields map[string]any,
) (*models.Drink, error) {

	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&models.Drink{}).
			Where("id = ?", id).
			Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	var d models.Drink
	if err := r.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		Where("id = ?", id).
		First(&d).Error; err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

func (r *DrinkGormRepository) SoftDelete(
	ctx context.Context,
	d *models.Drink,
) (bool, error) {

	res := r.db.WithContext(ctx).Delete(d)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// Compile-time check
var _ domain.Repository = (*DrinkGormRepository)(nil)
