package payment

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/entities"
	"Recipe-Catalog/internal/utils"
	"Recipe-Catalog/pkg/order"
	"Recipe-Catalog/pkg/recipe"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	PaymentService interface {
		Checkout(ctx context.Context, recipeID string, userID string) (domain.CheckoutResponse, error)
		HandleNotification(ctx context.Context, notification domain.MidtransNotification) error
	}

	paymentService struct {
		transactionRepository TransactionRepository
		recipeRepository      recipe.RecipeRepository
		orderService          order.OrderService
		snapClient            snap.Client
	}
)

func NewPaymentService(transactionRepository TransactionRepository, recipeRepository recipe.RecipeRepository, orderService order.OrderService) PaymentService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &paymentService{
		transactionRepository: transactionRepository,
		recipeRepository:      recipeRepository,
		orderService:          orderService,
		snapClient:            client,
	}
}

// Checkout places the order log entry and creates a payment transaction for
// it, priced from the recipe. The order history row is never touched again;
// only the transaction status changes on notification.
func (s *paymentService) Checkout(ctx context.Context, recipeID string, userID string) (domain.CheckoutResponse, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.CheckoutResponse{}, domain.ErrRecipeNotFound
	}

	rec, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CheckoutResponse{}, domain.ErrRecipeNotFound
		}
		return domain.CheckoutResponse{}, err
	}
	if rec.Price <= 0 {
		return domain.CheckoutResponse{}, domain.ErrRecipeNotPriced
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CheckoutResponse{}, domain.ErrParseUUID
	}

	placed, err := s.orderService.PlaceOrder(ctx, recipeID)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}
	orderUUID, err := uuid.Parse(placed.ID)
	if err != nil {
		return domain.CheckoutResponse{}, domain.ErrParseUUID
	}

	transaction := &entities.Transaction{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: rec.ID,
		OrderID:  orderUUID,
		Amount:   int64(rec.Price),
		Status:   domain.TransactionStatusPending,
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(&snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  transaction.ID.String(),
			GrossAmt: transaction.Amount,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    rec.ID.String(),
				Name:  rec.Title,
				Price: transaction.Amount,
				Qty:   1,
			},
		},
	})
	if snapErr != nil {
		return domain.CheckoutResponse{}, snapErr
	}
	transaction.PaymentLink = snapResp.RedirectURL

	if err := s.transactionRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.CheckoutResponse{}, err
	}

	return domain.CheckoutResponse{
		TransactionID: transaction.ID.String(),
		OrderID:       placed.ID,
		Amount:        transaction.Amount,
		PaymentLink:   transaction.PaymentLink,
	}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, notification domain.MidtransNotification) error {
	transaction, err := s.transactionRepository.GetTransactionByID(ctx, notification.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	switch notification.TransactionStatus {
	case "capture":
		if notification.FraudStatus == "accept" {
			transaction.Status = domain.TransactionStatusSettlement
		}
	case "settlement":
		transaction.Status = domain.TransactionStatusSettlement
	case "deny", "cancel":
		transaction.Status = domain.TransactionStatusCancel
	case "expire":
		transaction.Status = domain.TransactionStatusExpire
	default:
		return nil
	}

	return s.transactionRepository.SaveTransaction(ctx, transaction)
}
