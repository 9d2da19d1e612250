package domain

import (
	"time"
)

var (
	MessageSuccessPlaceOrder = "Order placed successfully!"
	MessageSuccessGetHistory = "success get order history"

	MessageFailedPlaceOrder = "failed to place order"
	MessageFailedGetHistory = "failed to get order history"
)

type (
	OrderResponse struct {
		ID        string    `json:"id"`
		RecipeID  string    `json:"recipe_id"`
		OrderedAt time.Time `json:"ordered_at"`
	}

	// OrderHistoryItem is one row of the history join: order timestamp plus
	// the name of the recipe it references.
	OrderHistoryItem struct {
		RecipeTitle string    `json:"recipe_title"`
		OrderedAt   time.Time `json:"ordered_at"`
	}
)
