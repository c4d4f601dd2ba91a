package cart

import (
	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/internal/catalog"
)

// EntryDTO is one populated cart row: the cart item id and quantity joined
// with the full product document.
type EntryDTO struct {
	ID       uuid.UUID          `json:"id"`
	Quantity int                `json:"quantity"`
	Product  catalog.ProductDTO `json:"product"`
}

// AddItemRequest is the payload for adding a product to the cart. The
// product id stays a plain string at the boundary; an id that does not
// resolve to a product reads the same as a missing one.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// Acknowledgement messages returned by cart writes.
const (
	MessageItemAdded   = "Item added to cart"
	MessageItemUpdated = "Cart item updated"
	MessageItemRemoved = "Item removed from cart"
)
