package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/internal/orders"
)

type stubOrderService struct {
	createUserID uuid.UUID
	createReq    orders.CreateOrderRequest
	created      *orders.OrderDTO
	createErr    error
	listResult   []orders.OrderDTO
}

func (s *stubOrderService) Create(_ context.Context, userID uuid.UUID, req orders.CreateOrderRequest) (*orders.OrderDTO, error) {
	s.createUserID = userID
	s.createReq = req
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubOrderService) ListMine(_ context.Context, userID uuid.UUID) ([]orders.OrderDTO, error) {
	return s.listResult, nil
}

func TestCreateOrderSuccess(t *testing.T) {
	userID := uuid.New()
	stub := &stubOrderService{created: &orders.OrderDTO{ID: uuid.New(), UserID: userID, Status: orders.InitialStatus}}

	body := strings.NewReader(`{
		"items": [{"product_id": "abc", "quantity": 2, "price": 39.99}],
		"total_amount": 79.98,
		"shipping_address": {"line1": "123 Main St", "city": "Springfield"}
	}`)
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/orders", body), userID)
	rec := httptest.NewRecorder()
	CreateOrder(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.createUserID != userID {
		t.Fatalf("user id not forwarded: %s", stub.createUserID)
	}
	if stub.createReq.TotalAmount != 79.98 {
		t.Fatalf("total not forwarded: %v", stub.createReq.TotalAmount)
	}
	if len(stub.createReq.Items) != 1 || stub.createReq.Items[0]["product_id"] != "abc" {
		t.Fatalf("items not forwarded: %v", stub.createReq.Items)
	}

	var resp orders.OrderDTO
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Status != "pending" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
}

func TestCreateOrderZeroTotal(t *testing.T) {
	userID := uuid.New()
	stub := &stubOrderService{created: &orders.OrderDTO{ID: uuid.New(), UserID: userID, Status: orders.InitialStatus}}

	body := strings.NewReader(`{
		"items": [{"product_id": "abc", "quantity": 1, "price": 0}],
		"total_amount": 0,
		"shipping_address": {"line1": "123 Main St", "city": "Springfield"}
	}`)
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/orders", body), userID)
	rec := httptest.NewRecorder()
	CreateOrder(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for zero total, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.createReq.TotalAmount != 0 {
		t.Fatalf("total not forwarded: %v", stub.createReq.TotalAmount)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`)), uuid.New())
	rec := httptest.NewRecorder()
	CreateOrder(&stubOrderService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty payload, got %d", rec.Code)
	}
}

func TestCreateOrderRequiresUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	CreateOrder(&stubOrderService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %d", rec.Code)
	}
}

func TestListOrders(t *testing.T) {
	userID := uuid.New()
	stub := &stubOrderService{listResult: []orders.OrderDTO{
		{ID: uuid.New(), UserID: userID, Status: orders.InitialStatus},
	}}

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/orders", nil), userID)
	rec := httptest.NewRecorder()
	ListOrders(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []orders.OrderDTO
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(resp) != 1 || resp[0].UserID != userID {
		t.Fatalf("unexpected body: %v", resp)
	}
}
