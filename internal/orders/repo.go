package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
)

const fetchLimit = 1000

// Repository encapsulates order persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an orders repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the order document.
func (r *Repository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// ListByUser returns up to fetchLimit orders owned by the user, in
// store-native order.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(fetchLimit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
