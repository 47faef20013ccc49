package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cocktails-rolodex/cocktails-api/internal/domain/ingredient"
	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

var _ ingredient.Repository = (*MockIngredientRepository)(nil)

// MockIngredientRepository is a testify mock of ingredient.Repository.
type MockIngredientRepository struct {
	mock.Mock
}

func NewMockIngredientRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIngredientRepository {
	m := &MockIngredientRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIngredientRepository) List(ctx context.Context, params record.ListParams) ([]models.Ingredient, error) {
	args := m.Called(ctx, params)
	ingredients, _ := args.Get(0).([]models.Ingredient)
	return ingredients, args.Error(1)
}

func (m *MockIngredientRepository) Get(ctx context.Context, id string) (*models.Ingredient, error) {
	args := m.Called(ctx, id)
	i, _ := args.Get(0).(*models.Ingredient)
	return i, args.Error(1)
}

func (m *MockIngredientRepository) ActiveDrinks(ctx context.Context, ingredientIDs []string) ([]ingredient.DrinkRef, error) {
	args := m.Called(ctx, ingredientIDs)
	refs, _ := args.Get(0).([]ingredient.DrinkRef)
	return refs, args.Error(1)
}
