package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/pkg/types"
)

// Order snapshots a checkout exactly as the client submitted it: the line
// items, the total, and the shipping address are stored verbatim with no
// referential validation or server-side recomputation. Orders are never
// mutated or deleted once written.
type Order struct {
	ID              uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	UserID          uuid.UUID          `gorm:"column:user_id;type:uuid;not null;index"`
	Items           types.DocumentList `gorm:"column:items;type:jsonb;serializer:json"`
	TotalAmount     float64            `gorm:"column:total_amount;not null"`
	Status          string             `gorm:"column:status;not null;default:'pending'"`
	ShippingAddress types.Document     `gorm:"column:shipping_address;type:jsonb;serializer:json"`
	CreatedAt       time.Time          `gorm:"column:created_at;autoCreateTime"`
}
