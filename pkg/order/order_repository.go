package order

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/entities"
	"context"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.OrderHistory) error
		GetOrderHistory(ctx context.Context) ([]domain.OrderHistoryItem, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.OrderHistory) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetOrderHistory(ctx context.Context) ([]domain.OrderHistoryItem, error) {
	var items []domain.OrderHistoryItem
	if err := r.db.WithContext(ctx).
		Model(&entities.OrderHistory{}).
		Select("recipe.title AS recipe_title, order_history.ordered_at").
		Joins("JOIN recipe ON recipe.id = order_history.recipe_id").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
