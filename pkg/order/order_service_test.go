package order

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) CreateOrder(ctx context.Context, order *entities.OrderHistory) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepository) GetOrderHistory(ctx context.Context) ([]domain.OrderHistoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderHistoryItem), args.Error(1)
}

type mockRecipeRepository struct {
	mock.Mock
}

func (m *mockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *mockRecipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) SaveRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *mockRecipeRepository) DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		orders := new(mockOrderRepository)
		recipes := new(mockRecipeRepository)
		svc := NewOrderService(orders, recipes)

		recipeID := uuid.New()
		recipes.On("GetRecipeByID", ctx, recipeID).Return(&entities.Recipe{ID: recipeID, Title: "Soup"}, nil)

		before := time.Now()
		orders.On("CreateOrder", ctx, mock.AnythingOfType("*entities.OrderHistory")).Return(nil).Run(func(args mock.Arguments) {
			created := args.Get(1).(*entities.OrderHistory)
			assert.Equal(t, recipeID, created.RecipeID)
			assert.False(t, created.OrderedAt.Before(before))
		})

		res, err := svc.PlaceOrder(ctx, recipeID.String())
		require.NoError(t, err)
		assert.Equal(t, recipeID.String(), res.RecipeID)
		orders.AssertExpectations(t)
	})

	t.Run("NonUUIDPathIsNotFound", func(t *testing.T) {
		orders := new(mockOrderRepository)
		recipes := new(mockRecipeRepository)
		svc := NewOrderService(orders, recipes)

		_, err := svc.PlaceOrder(ctx, "9999")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
		orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("UnknownRecipeIsNotFound", func(t *testing.T) {
		orders := new(mockOrderRepository)
		recipes := new(mockRecipeRepository)
		svc := NewOrderService(orders, recipes)

		recipeID := uuid.New()
		recipes.On("GetRecipeByID", ctx, recipeID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.PlaceOrder(ctx, recipeID.String())
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
		orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})
}

func TestGetOrderHistory(t *testing.T) {
	ctx := context.Background()
	orders := new(mockOrderRepository)
	recipes := new(mockRecipeRepository)
	svc := NewOrderService(orders, recipes)

	orderedAt := time.Now()
	orders.On("GetOrderHistory", ctx).Return([]domain.OrderHistoryItem{
		{RecipeTitle: "Soup", OrderedAt: orderedAt},
		{RecipeTitle: "Stew", OrderedAt: orderedAt},
	}, nil)

	items, err := svc.GetOrderHistory(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Soup", items[0].RecipeTitle)
	assert.Equal(t, "Stew", items[1].RecipeTitle)
}
