package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cocktails-rolodex/cocktails-api/internal/domain/drink"
	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

var _ drink.Repository = (*MockDrinkRepository)(nil)

// MockDrinkRepository is a testify mock of drink.Repository.
type MockDrinkRepository struct {
	mock.Mock
}

func NewMockDrinkRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDrinkRepository {
	m := &MockDrinkRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDrinkRepository) FindOwner(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockDrinkRepository) List(ctx context.Context, params record.ListParams) ([]models.Drink, error) {
	args := m.Called(ctx, params)
	drinks, _ := args.Get(0).([]models.Drink)
	return drinks, args.Error(1)
}

func (m *MockDrinkRepository) GetIncludingDeleted(ctx context.Context, id string) (*models.Drink, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.Drink)
	return d, args.Error(1)
}

func (m *MockDrinkRepository) Get(ctx context.Context, id string) (*models.Drink, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.Drink)
	return d, args.Error(1)
}

func (m *MockDrinkRepository) FindActiveByOwnerAndName(ctx context.Context, userID, name string) (*models.Drink, error) {
	args := m.Called(ctx, userID, name)
	d, _ := args.Get(0).(*models.Drink)
	return d, args.Error(1)
}

func (m *MockDrinkRepository) Create(ctx context.Context, d *models.Drink, lines []drink.IngredientLine) error {
	return m.Called(ctx, d, lines).Error(0)
}

func (m *MockDrinkRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Drink, error) {
	args := m.Called(ctx, id, fields)
	d, _ := args.Get(0).(*models.Drink)
	return d, args.Error(1)
}

func (m *MockDrinkRepository) SoftDelete(ctx context.Context, d *models.Drink) (bool, error) {
	args := m.Called(ctx, d)
	return args.Bool(0), args.Error(1)
}
