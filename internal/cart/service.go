package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/internal/catalog"
	"github.com/storefront-labs/storefront-backend/pkg/db/models"
	pkgerrors "github.com/storefront-labs/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes per-user cart operations. Every method takes the already
// resolved owner id; the HTTP layer derives it from the bearer token.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]EntryDTO, error)
	Add(ctx context.Context, userID, productID uuid.UUID, quantity int) (string, error)
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error
	Remove(ctx context.Context, userID, itemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	CartRepo    *Repository
	ProductRepo *catalog.Repository
}

type service struct {
	cartRepo    *Repository
	productRepo *catalog.Repository
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.CartRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart repo is required")
	}
	if params.ProductRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "product repo is required")
	}
	return &service{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
	}, nil
}

// List joins each cart item with its product. Items whose product no longer
// exists are silently omitted; the dangling row stays in the store.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]EntryDTO, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cart items")
	}

	productIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart products")
	}
	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	entries := make([]EntryDTO, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		entries = append(entries, EntryDTO{
			ID:       item.ID,
			Quantity: item.Quantity,
			Product:  *catalog.FromModel(&product),
		})
	}
	return entries, nil
}

// Add puts a product in the cart. A repeat add for the same product merges by
// incrementing the existing quantity; the read and the write are two separate
// store calls, so concurrent adds can lose an increment. There is no upper
// bound on quantity and no check against product stock.
func (s *service) Add(ctx context.Context, userID, productID uuid.UUID, quantity int) (string, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	existing, err := s.cartRepo.FindByUserAndProduct(ctx, userID, productID)
	if err == nil {
		if err := s.cartRepo.SetQuantity(ctx, existing.ID, existing.Quantity+quantity); err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "merge cart item")
		}
		return MessageItemUpdated, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup cart item")
	}

	item := &models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create cart item")
	}
	return MessageItemAdded, nil
}

// UpdateQuantity sets the quantity to the given value exactly. An item id
// owned by a different user is reported as not found.
func (s *service) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	matched, err := s.cartRepo.SetQuantityOwned(ctx, itemID, userID, quantity)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update cart item")
	}
	if matched == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Cart item not found")
	}
	return nil
}

// Remove deletes the item under the same ownership rule as UpdateQuantity.
func (s *service) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	deleted, err := s.cartRepo.DeleteOwned(ctx, itemID, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart item")
	}
	if deleted == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Cart item not found")
	}
	return nil
}

// Clear drops every cart item the user owns.
func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.DeleteByUser(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
	}
	return nil
}
