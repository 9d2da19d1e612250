package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title    string    `gorm:"not null" json:"title"`
	ImageURL string    `json:"image_url,omitempty"`

	Recipes []*Recipe `gorm:"foreignKey:CategoryID"`
	Timestamp
}

func (Category) TableName() string {
	return "category"
}
