package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title    string    `gorm:"not null" json:"title"`
	Price    int       `json:"price"`
	ImageURL string    `json:"image_url,omitempty"`
	// Categories is the legacy free-text label. CategoryID is authoritative.
	Categories  string     `json:"categories,omitempty"`
	CategoryID  *uuid.UUID `gorm:"type:uuid" json:"category_id,omitempty"`
	Ingredients string     `gorm:"type:text" json:"ingredients"`
	Steps       string     `gorm:"type:text" json:"steps"`
	IsFavorite  bool       `gorm:"default:false" json:"is_favorite"`

	Category *Category `gorm:"foreignKey:CategoryID"`
	Timestamp
}

func (Recipe) TableName() string {
	return "recipe"
}
