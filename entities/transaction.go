package entities

import (
	"github.com/google/uuid"
)

type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null" json:"recipe_id"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null" json:"order_id"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"` // pending, settlement, expire, cancel
	PaymentLink string    `json:"payment_link,omitempty"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}

func (Transaction) TableName() string {
	return "transaction"
}
