package domain

import (
	"errors"
)

const (
	TransactionStatusPending    = "pending"
	TransactionStatusSettlement = "settlement"
	TransactionStatusExpire     = "expire"
	TransactionStatusCancel     = "cancel"
)

var (
	MessageSuccessCheckout = "checkout created successfully"
	MessageSuccessWebhook  = "notification processed"

	MessageFailedCheckout = "failed to create checkout"
	MessageFailedWebhook  = "failed to process notification"

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrRecipeNotPriced     = errors.New("recipe has no price to charge")
)

type (
	CheckoutResponse struct {
		TransactionID string `json:"transaction_id"`
		OrderID       string `json:"order_id"`
		Amount        int64  `json:"amount"`
		PaymentLink   string `json:"payment_link"`
	}

	// MidtransNotification carries the fields of the payment gateway's
	// HTTP notification that this service consumes.
	MidtransNotification struct {
		TransactionStatus string `json:"transaction_status" validate:"required"`
		OrderID           string `json:"order_id" validate:"required"`
		FraudStatus       string `json:"fraud_status"`
	}
)
