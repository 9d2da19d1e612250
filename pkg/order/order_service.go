package order

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/entities"
	"Recipe-Catalog/pkg/recipe"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, recipeID string) (domain.OrderResponse, error)
		GetOrderHistory(ctx context.Context) ([]domain.OrderHistoryItem, error)
	}

	orderService struct {
		orderRepository  OrderRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewOrderService(orderRepository OrderRepository, recipeRepository recipe.RecipeRepository) OrderService {
	return &orderService{
		orderRepository:  orderRepository,
		recipeRepository: recipeRepository,
	}
}

// PlaceOrder appends a log entry for the recipe. No quantity, no price
// capture, no inventory effect.
func (s *orderService) PlaceOrder(ctx context.Context, recipeID string) (domain.OrderResponse, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrRecipeNotFound
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrRecipeNotFound
		}
		return domain.OrderResponse{}, err
	}

	order := &entities.OrderHistory{
		ID:        uuid.New(),
		RecipeID:  id,
		OrderedAt: time.Now(),
	}

	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}

	return domain.OrderResponse{
		ID:        order.ID.String(),
		RecipeID:  order.RecipeID.String(),
		OrderedAt: order.OrderedAt,
	}, nil
}

func (s *orderService) GetOrderHistory(ctx context.Context) ([]domain.OrderHistoryItem, error) {
	return s.orderRepository.GetOrderHistory(ctx)
}
