package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog listing. Category is free text; stock is advisory and
// never decremented by order placement.
type Product struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description;not null"`
	Price       float64   `gorm:"column:price;not null"`
	ImageURL    string    `gorm:"column:image_url;not null"`
	Category    string    `gorm:"column:category;not null"`
	Stock       int       `gorm:"column:stock;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}
