package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/drink"
	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/httperr"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
	"github.com/cocktails-rolodex/cocktails-api/internal/testutil"
)

func strPtr(s string) *string { return &s }

func createUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createDrink(t *testing.T, repo *DrinkGormRepository, userID, name string, lines ...domain.IngredientLine) *models.Drink {
	t.Helper()
	d := &models.Drink{UserID: userID, Name: name}
	require.NoError(t, repo.Create(context.Background(), d, lines))
	return d
}

func TestDrinkCreateFindsOrCreatesIngredients(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewDrinkGormRepository(db)
	owner := createUser(t, db, "Ana", "ana@x.com")

	negroni := createDrink(t, repo, owner.ID, "Negroni",
		domain.IngredientLine{Name: "Gin", Amount: "1", AmountUnit: strPtr("oz")},
		domain.IngredientLine{Name: "Campari", Amount: "1", AmountUnit: strPtr("oz")},
	)
	martini := createDrink(t, repo, owner.ID, "Martini",
		domain.IngredientLine{Name: "Gin", Amount: "2", Brand: strPtr("")},
	)

	var gins []models.Ingredient
	require.NoError(t, db.Where("name = ?", "Gin").Find(&gins).Error)
	require.Len(t, gins, 1)

	var links int64
	require.NoError(t, db.Model(&models.IngredientOnDrink{}).
		Where("ingredient_id = ?", gins[0].ID).
		Count(&links).Error)
	assert.EqualValues(t, 2, links)

	require.Len(t, negroni.Ingredients, 2)
	assert.Equal(t, "oz", *negroni.Ingredients[0].AmountUnit)
	require.NotNil(t, negroni.Ingredients[0].Ingredient)
	assert.Equal(t, "Gin", negroni.Ingredients[0].Ingredient.Name)
	require.Len(t, martini.Ingredients, 1)
	assert.Nil(t, martini.Ingredients[0].Brand)
	assert.Nil(t, martini.Ingredients[0].AmountUnit)
	assert.False(t, martini.Ingredients[0].Garnish)
}

func TestDrinkIngredientNameIsCaseSensitive(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewDrinkGormRepository(db)
	owner := createUser(t, db, "Ana", "ana@x.com")

	createDrink(t, repo, owner.ID, "One", domain.IngredientLine{Name: "Gin", Amount: "1"})
	createDrink(t, repo, owner.ID, "Two", domain.IngredientLine{Name: "gin", Amount: "1"})

	var count int64
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestDrinkNameUniquePerOwnerWhileActive(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewDrinkGormRepository(db)
	ctx := context.Background()
	ana := createUser(t, db, "Ana", "ana@x.com")
	bill := createUser(t, db, "Bill", "bill@x.com")

	first := createDrink(t, repo, ana.ID, "Negroni")
	createDrink(t, repo, bill.ID, "Negroni")

	err := repo.Create(ctx, &models.Drink{UserID: ana.ID, Name: "Negroni"}, nil)
	assert.True(t, httperr.IsUniqueViolation(err), "got %v", err)

	deleted, err := repo.SoftDelete(ctx, first)
	require.NoError(t, err)
	assert.True(t, deleted)

	createDrink(t, repo, ana.ID, "Negroni")
}

func TestDrinkSoftDeleteOnlyOnce(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewDrinkGormRepository(db)
	ctx := context.Background()
	owner := createUser(t, db, "Ana", "ana@x.com")
	d := createDrink(t, repo, owner.ID, "Negroni")

	deleted, err := repo.SoftDelete(ctx, d)
	require.NoError(t, err)
	assert.True(t, deleted)

	stale := &models.Drink{ID: d.ID}
	deleted, err = repo.SoftDelete(ctx, stale)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.Get(ctx, d.ID)
	assert.ErrorIs(t, err, record.ErrNotFound)

	found, err := repo.GetIncludingDeleted(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, record.StateDeleted, record.StateOf(found.DeletedAt))
}

func TestDrinkListFiltersAndPaginates(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewDrinkGormRepository(db)
	ctx := context.Background()
	owner := createUser(t, db, "Ana", "ana@x.com")

	createDrink(t, repo, owner.ID, "Negroni", domain.IngredientLine{Name: "Gin", Amount: "1"})
	createDrink(t, repo, owner.ID, "Gin Fizz")
	createDrink(t, repo, owner.ID, "Boulevardier")
	gone := createDrink(t, repo, owner.ID, "Pink Gin")
	_, err := repo.SoftDelete(ctx, gone)
	require.NoError(t, err)

	all, err := repo.List(ctx, record.ListParams{Order: record.OrderAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"Boulevardier", "Gin Fizz", "Negroni"}, drinkNames(all))
	require.Len(t, all[2].Ingredients, 1)
	assert.Equal(t, "Gin", all[2].Ingredients[0].Ingredient.Name)

	search, err := repo.List(ctx, record.ListParams{Search: "GIN", Order: record.OrderAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"Gin Fizz"}, drinkNames(search))

	substring, err := repo.List(ctx, record.ListParams{Search: "roni", Order: record.OrderAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"Negroni"}, drinkNames(substring))

	page, err := repo.List(ctx, record.ListParams{Skip: 1, Take: 1, Order: record.OrderDesc})
	require.NoError(t, err)
	assert.Equal(t, []string{"Gin Fizz"}, drinkNames(page))

	skipOnly, err := repo.List(ctx, record.ListParams{Skip: 2, Order: record.OrderAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"Negroni"}, drinkNames(skipOnly))
}

func TestSearchMatchesNonASCIINames(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewDrinkGormRepository(db)
	ingredients := NewIngredientGormRepository(db)
	ctx := context.Background()
	owner := createUser(t, db, "Ana", "ana@x.com")

	createDrink(t, repo, owner.ID, "Élixir Vert", domain.IngredientLine{Name: "Chartreuse Élixir", Amount: "1"})
	createDrink(t, repo, owner.ID, "Negroni")

	for _, term := range []string{"Élixir", "lixir V", "VERT"} {
		found, err := repo.List(ctx, record.ListParams{Search: term, Order: record.OrderAsc})
		require.NoError(t, err)
		assert.Equal(t, []string{"Élixir Vert"}, drinkNames(found), term)
	}

	found, err := ingredients.List(ctx, record.ListParams{Search: "Élixir", Order: record.OrderAsc})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Chartreuse Élixir", found[0].Name)
}

func TestDrinkUpdate(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewDrinkGormRepository(db)
	ctx := context.Background()
	owner := createUser(t, db, "Ana", "ana@x.com")
	d := createDrink(t, repo, owner.ID, "Negroni", domain.IngredientLine{Name: "Gin", Amount: "1"})
	createDrink(t, repo, owner.ID, "Americano")

	updated, err := repo.Update(ctx, d.ID, map[string]any{"published": true, "notes": "stirred"})
	require.NoError(t, err)
	assert.True(t, updated.Published)
	assert.Equal(t, "stirred", updated.Notes)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, "Gin", updated.Ingredients[0].Ingredient.Name)

	_, err = repo.Update(ctx, d.ID, map[string]any{"name": "Americano"})
	assert.True(t, httperr.IsUniqueViolation(err), "got %v", err)
}

func TestIngredientActiveDrinksSkipsDeleted(t *testing.T) {
	db := testutil.SetupDB(t)
	drinks := NewDrinkGormRepository(db)
	repo := NewIngredientGormRepository(db)
	ctx := context.Background()
	owner := createUser(t, db, "Ana", "ana@x.com")

	negroni := createDrink(t, drinks, owner.ID, "Negroni", domain.IngredientLine{Name: "Gin", Amount: "1"})
	createDrink(t, drinks, owner.ID, "Martini", domain.IngredientLine{Name: "Gin", Amount: "2"})

	ings, err := repo.List(ctx, record.ListParams{Order: record.OrderAsc})
	require.NoError(t, err)
	require.Len(t, ings, 1)

	refs, err := repo.ActiveDrinks(ctx, []string{ings[0].ID})
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "Martini", refs[0].Name)
	assert.Equal(t, ings[0].ID, refs[0].IngredientID)

	_, err = drinks.SoftDelete(ctx, negroni)
	require.NoError(t, err)

	refs, err = repo.ActiveDrinks(ctx, []string{ings[0].ID})
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "Martini", refs[0].Name)

	none, err := repo.ActiveDrinks(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestUserRepository(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewUserGormRepository(db)
	drinks := NewDrinkGormRepository(db)
	ctx := context.Background()

	carter := createUser(t, db, "Carter", "carter@x.com")
	bill := createUser(t, db, "Bill", "bill@x.com")
	createDrink(t, drinks, bill.ID, "Sazerac")
	old := createDrink(t, drinks, bill.ID, "Old Pal")
	_, err := drinks.SoftDelete(ctx, old)
	require.NoError(t, err)

	users, err := repo.List(ctx, record.OrderAsc)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Bill", users[0].Name)
	assert.Equal(t, []string{"Sazerac"}, drinkNames(users[0].Drinks))
	assert.Equal(t, models.RoleUser, users[0].Role)

	users, err = repo.List(ctx, record.OrderDesc)
	require.NoError(t, err)
	assert.Equal(t, "Carter", users[0].Name)

	err = repo.Create(ctx, &models.User{Name: "Bill", Email: "bill@x.com"})
	assert.True(t, httperr.IsUniqueViolation(err), "got %v", err)

	_, err = repo.FindActiveByNameAndEmail(ctx, "Bill", "other@x.com")
	assert.ErrorIs(t, err, record.ErrNotFound)

	updated, err := repo.Update(ctx, carter.ID, map[string]any{"email": "c@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "c@x.com", updated.Email)

	deleted, err := repo.SoftDelete(ctx, carter)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.Get(ctx, carter.ID)
	assert.ErrorIs(t, err, record.ErrNotFound)

	_, err = repo.Update(ctx, carter.ID, map[string]any{"name": "Ghost"})
	assert.ErrorIs(t, err, record.ErrNotFound)

	found, err := repo.GetIncludingDeleted(ctx, carter.ID)
	require.NoError(t, err)
	assert.True(t, found.DeletedAt.Valid)

	require.NoError(t, repo.Create(ctx, &models.User{Name: "Carter", Email: "c@x.com"}))
}

func drinkNames(drinks []models.Drink) []string {
	names := make([]string, 0, len(drinks))
	for _, d := range drinks {
		names = append(names, d.Name)
	}
	return names
}
