package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
)

const fetchLimit = 1000

// Repository encapsulates cart item persistence. Every method is a single
// independent store call; callers that chain them accept the resulting races.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByUser returns up to fetchLimit cart items owned by the user.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(fetchLimit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByUserAndProduct loads the single cart item for a (user, product) pair.
func (r *Repository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new cart item.
func (r *Repository) Create(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// SetQuantity overwrites the quantity of the item by id alone. Used by the
// merge path, which has already resolved ownership through the pair lookup.
func (r *Repository) SetQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

// SetQuantityOwned overwrites the quantity only when the item belongs to the
// user, and reports how many rows matched. An id owned by someone else
// matches nothing.
func (r *Repository) SetQuantityOwned(ctx context.Context, itemID, userID uuid.UUID, quantity int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	return res.RowsAffected, res.Error
}

// DeleteOwned removes the item under the same ownership rule.
func (r *Repository) DeleteOwned(ctx context.Context, itemID, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

// DeleteByUser removes every cart item the user owns.
func (r *Repository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}
