package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/pkg/db/models"
	pkgerrors "github.com/storefront-labs/storefront-backend/pkg/errors"
)

// Service exposes per-user order operations.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*OrderDTO, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
}

// cartClearer is the slice of the cart service the checkout side effect needs.
type cartClearer interface {
	Clear(ctx context.Context, userID uuid.UUID) error
}

// ServiceParams groups dependencies for the order service.
type ServiceParams struct {
	OrderRepo *Repository
	Cart      cartClearer
}

type service struct {
	orderRepo *Repository
	cart      cartClearer
}

// NewService builds an order service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.OrderRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "order repo is required")
	}
	if params.Cart == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart service is required")
	}
	return &service{
		orderRepo: params.OrderRepo,
		cart:      params.Cart,
	}, nil
}

// Create persists the submitted snapshot verbatim, then clears the user's
// cart unconditionally. The two writes are independent store calls, not a
// transaction: a crash in between leaves the order placed with the cart
// intact, and the cart is emptied whether or not the submitted items match
// its contents.
func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*OrderDTO, error) {
	order := &models.Order{
		ID:              uuid.New(),
		UserID:          userID,
		Items:           req.Items,
		TotalAmount:     req.TotalAmount,
		Status:          InitialStatus,
		ShippingAddress: req.ShippingAddress,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
	}

	if err := s.cart.Clear(ctx, userID); err != nil {
		return nil, err
	}

	return FromModel(order), nil
}

// ListMine returns the user's own orders.
func (s *service) ListMine(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}

	result := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		result = append(result, *FromModel(&orders[i]))
	}
	return result, nil
}
