package entities

import (
	"time"

	"github.com/google/uuid"
)

type OrderHistory struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null" json:"recipe_id"`
	OrderedAt time.Time `gorm:"type:timestamp;default:now()" json:"ordered_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

func (OrderHistory) TableName() string {
	return "order_history"
}
