package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/api/middleware"
	"github.com/storefront-labs/storefront-backend/internal/cart"
	pkgerrors "github.com/storefront-labs/storefront-backend/pkg/errors"
	"github.com/storefront-labs/storefront-backend/pkg/types"
)

type stubCartService struct {
	entries []cart.EntryDTO

	addUserID    uuid.UUID
	addProductID uuid.UUID
	addQuantity  int
	addMessage   string
	addErr       error

	updateQuantity int
	updateErr      error
	removeErr      error
}

func (s *stubCartService) List(_ context.Context, userID uuid.UUID) ([]cart.EntryDTO, error) {
	return s.entries, nil
}

func (s *stubCartService) Add(_ context.Context, userID, productID uuid.UUID, quantity int) (string, error) {
	s.addUserID = userID
	s.addProductID = productID
	s.addQuantity = quantity
	if s.addErr != nil {
		return "", s.addErr
	}
	return s.addMessage, nil
}

func (s *stubCartService) UpdateQuantity(_ context.Context, userID, itemID uuid.UUID, quantity int) error {
	s.updateQuantity = quantity
	return s.updateErr
}

func (s *stubCartService) Remove(_ context.Context, userID, itemID uuid.UUID) error {
	return s.removeErr
}

func (s *stubCartService) Clear(_ context.Context, userID uuid.UUID) error {
	return nil
}

func authedRequest(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func TestGetCartRequiresUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	GetCart(&stubCartService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %d", rec.Code)
	}
}

func TestAddToCartSuccess(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	stub := &stubCartService{addMessage: cart.MessageItemAdded}

	body := strings.NewReader(`{"product_id": "` + productID.String() + `", "quantity": 2}`)
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/cart", body), userID)
	rec := httptest.NewRecorder()
	AddToCart(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.addUserID != userID || stub.addProductID != productID || stub.addQuantity != 2 {
		t.Fatalf("service called with wrong args: %+v", stub)
	}

	var resp types.Message
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Message != "Item added to cart" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestAddToCartZeroQuantity(t *testing.T) {
	productID := uuid.New()
	stub := &stubCartService{addMessage: cart.MessageItemAdded, addQuantity: -1}

	body := strings.NewReader(`{"product_id": "` + productID.String() + `", "quantity": 0}`)
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/cart", body), uuid.New())
	rec := httptest.NewRecorder()
	AddToCart(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for zero quantity, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.addQuantity != 0 {
		t.Fatalf("quantity not forwarded: %d", stub.addQuantity)
	}
}

func TestAddToCartMalformedProductID(t *testing.T) {
	stub := &stubCartService{addMessage: cart.MessageItemAdded}

	body := strings.NewReader(`{"product_id": "not-a-real-id", "quantity": 1}`)
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/cart", body), uuid.New())
	rec := httptest.NewRecorder()
	AddToCart(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.addProductID != uuid.Nil {
		t.Fatalf("service called with malformed id: %s", stub.addProductID)
	}

	var resp types.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Error.Message != "Product not found" {
		t.Fatalf("unexpected message: %q", resp.Error.Message)
	}
}

func TestAddToCartValidation(t *testing.T) {
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{}`)), uuid.New())
	rec := httptest.NewRecorder()
	AddToCart(&stubCartService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty payload, got %d", rec.Code)
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	stub := &stubCartService{addErr: pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")}
	productID := uuid.New()

	body := strings.NewReader(`{"product_id": "` + productID.String() + `", "quantity": 1}`)
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/cart", body), uuid.New())
	rec := httptest.NewRecorder()
	AddToCart(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateCartItemQuantityQueryParam(t *testing.T) {
	itemID := uuid.New()
	stub := &stubCartService{}

	req := httptest.NewRequest(http.MethodPut, "/api/cart/"+itemID.String()+"?quantity=7", nil)
	req = routeRequest(authedRequest(req, uuid.New()), "id", itemID.String())
	rec := httptest.NewRecorder()
	UpdateCartItem(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.updateQuantity != 7 {
		t.Fatalf("quantity not forwarded: %d", stub.updateQuantity)
	}

	var resp types.Message
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Message != "Cart item updated" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestUpdateCartItemMissingQuantity(t *testing.T) {
	itemID := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/api/cart/"+itemID.String(), nil)
	req = routeRequest(authedRequest(req, uuid.New()), "id", itemID.String())
	rec := httptest.NewRecorder()
	UpdateCartItem(&stubCartService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without quantity, got %d", rec.Code)
	}
}

func TestRemoveCartItemNotFound(t *testing.T) {
	itemID := uuid.New()
	stub := &stubCartService{removeErr: pkgerrors.New(pkgerrors.CodeNotFound, "Cart item not found")}

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/"+itemID.String(), nil)
	req = routeRequest(authedRequest(req, uuid.New()), "id", itemID.String())
	rec := httptest.NewRecorder()
	RemoveCartItem(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body types.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Message != "Cart item not found" {
		t.Fatalf("unexpected message: %q", body.Error.Message)
	}
}
