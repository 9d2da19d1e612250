package payment

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockTransactionRepository struct {
	mock.Mock
}

func (m *mockTransactionRepository) CreateTransaction(ctx context.Context, transaction *entities.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *mockTransactionRepository) GetTransactionByID(ctx context.Context, id string) (*entities.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Transaction), args.Error(1)
}

func (m *mockTransactionRepository) SaveTransaction(ctx context.Context, transaction *entities.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
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

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) PlaceOrder(ctx context.Context, recipeID string) (domain.OrderResponse, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(domain.OrderResponse), args.Error(1)
}

func (m *mockOrderService) GetOrderHistory(ctx context.Context) ([]domain.OrderHistoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderHistoryItem), args.Error(1)
}

func TestCheckoutRejections(t *testing.T) {
	ctx := context.Background()

	t.Run("NonUUIDRecipeIsNotFound", func(t *testing.T) {
		transactions := new(mockTransactionRepository)
		svc := NewPaymentService(transactions, new(mockRecipeRepository), new(mockOrderService))

		_, err := svc.Checkout(ctx, "9999", uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
		transactions.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	})

	t.Run("UnknownRecipeIsNotFound", func(t *testing.T) {
		recipes := new(mockRecipeRepository)
		svc := NewPaymentService(new(mockTransactionRepository), recipes, new(mockOrderService))

		recipeID := uuid.New()
		recipes.On("GetRecipeByID", ctx, recipeID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Checkout(ctx, recipeID.String(), uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("UnpricedRecipeCannotBeCharged", func(t *testing.T) {
		recipes := new(mockRecipeRepository)
		orders := new(mockOrderService)
		svc := NewPaymentService(new(mockTransactionRepository), recipes, orders)

		recipeID := uuid.New()
		recipes.On("GetRecipeByID", ctx, recipeID).Return(&entities.Recipe{ID: recipeID, Title: "Soup", Price: 0}, nil)

		_, err := svc.Checkout(ctx, recipeID.String(), uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrRecipeNotPriced)
		orders.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
	})
}

func TestHandleNotification(t *testing.T) {
	ctx := context.Background()

	newTransaction := func() *entities.Transaction {
		return &entities.Transaction{ID: uuid.New(), Status: domain.TransactionStatusPending}
	}

	statusCases := []struct {
		name         string
		notification domain.MidtransNotification
		want         string
	}{
		{"CaptureAcceptSettles", domain.MidtransNotification{TransactionStatus: "capture", FraudStatus: "accept"}, domain.TransactionStatusSettlement},
		{"SettlementSettles", domain.MidtransNotification{TransactionStatus: "settlement"}, domain.TransactionStatusSettlement},
		{"DenyCancels", domain.MidtransNotification{TransactionStatus: "deny"}, domain.TransactionStatusCancel},
		{"CancelCancels", domain.MidtransNotification{TransactionStatus: "cancel"}, domain.TransactionStatusCancel},
		{"ExpireExpires", domain.MidtransNotification{TransactionStatus: "expire"}, domain.TransactionStatusExpire},
	}

	for _, tc := range statusCases {
		t.Run(tc.name, func(t *testing.T) {
			transactions := new(mockTransactionRepository)
			svc := NewPaymentService(transactions, new(mockRecipeRepository), new(mockOrderService))

			transaction := newTransaction()
			notification := tc.notification
			notification.OrderID = transaction.ID.String()

			transactions.On("GetTransactionByID", ctx, transaction.ID.String()).Return(transaction, nil)
			transactions.On("SaveTransaction", ctx, transaction).Return(nil)

			require.NoError(t, svc.HandleNotification(ctx, notification))
			assert.Equal(t, tc.want, transaction.Status)
		})
	}

	t.Run("UnknownStatusIsIgnored", func(t *testing.T) {
		transactions := new(mockTransactionRepository)
		svc := NewPaymentService(transactions, new(mockRecipeRepository), new(mockOrderService))

		transaction := newTransaction()
		transactions.On("GetTransactionByID", ctx, transaction.ID.String()).Return(transaction, nil)

		err := svc.HandleNotification(ctx, domain.MidtransNotification{
			TransactionStatus: "refund",
			OrderID:           transaction.ID.String(),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusPending, transaction.Status)
		transactions.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
	})

	t.Run("UnknownTransaction", func(t *testing.T) {
		transactions := new(mockTransactionRepository)
		svc := NewPaymentService(transactions, new(mockRecipeRepository), new(mockOrderService))

		transactions.On("GetTransactionByID", ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

		err := svc.HandleNotification(ctx, domain.MidtransNotification{
			TransactionStatus: "settlement",
			OrderID:           "missing",
		})
		assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
	})
}
