package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem links a user to a product with a quantity. At most one row exists
// per (user_id, product_id) pair; that is enforced by the merge-on-add service
// logic, not by a database constraint. ProductID may dangle after a product
// is deleted.
type CartItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Quantity  int       `gorm:"column:quantity;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
