package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/pkg/db/models"
	"github.com/storefront-labs/storefront-backend/pkg/types"
)

// InitialStatus is the fixed status every new order starts in. No exposed
// operation ever moves it.
const InitialStatus = "pending"

// OrderDTO is the transport shape of an order document. Items and the
// shipping address are echoed exactly as the client submitted them.
type OrderDTO struct {
	ID              uuid.UUID          `json:"id"`
	UserID          uuid.UUID          `json:"user_id"`
	Items           types.DocumentList `json:"items"`
	TotalAmount     float64            `json:"total_amount"`
	Status          string             `json:"status"`
	ShippingAddress types.Document     `json:"shipping_address"`
	CreatedAt       time.Time          `json:"created_at"`
}

// CreateOrderRequest carries the client-submitted checkout snapshot. The
// total is not recomputed and the items are not validated against the catalog
// or the cart.
type CreateOrderRequest struct {
	Items           types.DocumentList `json:"items" validate:"required"`
	TotalAmount     float64            `json:"total_amount"`
	ShippingAddress types.Document     `json:"shipping_address" validate:"required"`
}

func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}

	return &OrderDTO{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           o.Items,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt,
	}
}
