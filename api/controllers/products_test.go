package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/internal/catalog"
	"github.com/storefront-labs/storefront-backend/pkg/logger"
	"github.com/storefront-labs/storefront-backend/pkg/types"
	pkgerrors "github.com/storefront-labs/storefront-backend/pkg/errors"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

type stubCatalogService struct {
	listFilters  catalog.ListFilters
	listResult   []catalog.ProductDTO
	getResult    *catalog.ProductDTO
	getErr       error
	deleteErr    error
	deletedID    uuid.UUID
	countsResult []catalog.CategoryCountDTO
}

func (s *stubCatalogService) List(_ context.Context, filters catalog.ListFilters) ([]catalog.ProductDTO, error) {
	s.listFilters = filters
	return s.listResult, nil
}

func (s *stubCatalogService) Get(_ context.Context, id uuid.UUID) (*catalog.ProductDTO, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getResult, nil
}

func (s *stubCatalogService) Create(_ context.Context, input catalog.CreateProductInput) (*catalog.ProductDTO, error) {
	return &catalog.ProductDTO{ID: uuid.New(), Name: input.Name, Price: input.Price}, nil
}

func (s *stubCatalogService) Update(_ context.Context, id uuid.UUID, input catalog.UpdateProductInput) (*catalog.ProductDTO, error) {
	dto := &catalog.ProductDTO{ID: id}
	if input.Name != nil {
		dto.Name = *input.Name
	}
	return dto, nil
}

func (s *stubCatalogService) Delete(_ context.Context, id uuid.UUID) error {
	s.deletedID = id
	return s.deleteErr
}

func (s *stubCatalogService) CategoryCounts(_ context.Context) ([]catalog.CategoryCountDTO, error) {
	return s.countsResult, nil
}

func routeRequest(req *http.Request, paramName, paramValue string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(paramName, paramValue)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	return req.WithContext(ctx)
}

func TestListProductsForwardsFilters(t *testing.T) {
	stub := &stubCatalogService{listResult: []catalog.ProductDTO{}}

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=Home&search=lamp", nil)
	rec := httptest.NewRecorder()
	ListProducts(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.listFilters.Category != "Home" || stub.listFilters.Search != "lamp" {
		t.Fatalf("filters not forwarded: %+v", stub.listFilters)
	}

	var body []catalog.ProductDTO
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body == nil || len(body) != 0 {
		t.Fatalf("expected empty json array, got %v", body)
	}
}

func TestGetProductInvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-uuid", nil)
	req = routeRequest(req, "id", "not-a-uuid")
	rec := httptest.NewRecorder()
	GetProduct(&stubCatalogService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for malformed id, got %d", rec.Code)
	}

	var body types.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Message != "Product not found" {
		t.Fatalf("unexpected message: %q", body.Error.Message)
	}
}

func TestGetProductNotFound(t *testing.T) {
	productID := uuid.New()
	stub := &stubCatalogService{getErr: pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")}

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+productID.String(), nil)
	req = routeRequest(req, "id", productID.String())
	rec := httptest.NewRecorder()
	GetProduct(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateProductValidation(t *testing.T) {
	body := strings.NewReader(`{"name": "Lamp"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	rec := httptest.NewRecorder()
	CreateProduct(&stubCatalogService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", rec.Code)
	}
}

func TestCreateProductZeroPrice(t *testing.T) {
	body := strings.NewReader(`{"name": "Sticker", "description": "Free promo sticker", "price": 0, "image_url": "https://example.com/sticker.jpg", "category": "Accessories"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	rec := httptest.NewRecorder()
	CreateProduct(&stubCatalogService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for zero price, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp catalog.ProductDTO
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Price != 0 {
		t.Fatalf("price not preserved: %v", resp.Price)
	}
}

func TestCreateProductNegativePrice(t *testing.T) {
	body := strings.NewReader(`{"name": "Lamp", "description": "Desk lamp", "price": -1, "image_url": "https://example.com/lamp.jpg", "category": "Home"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	rec := httptest.NewRecorder()
	CreateProduct(&stubCatalogService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative price, got %d", rec.Code)
	}
}

func TestDeleteProductSuccess(t *testing.T) {
	productID := uuid.New()
	stub := &stubCatalogService{}

	req := httptest.NewRequest(http.MethodDelete, "/api/products/"+productID.String(), nil)
	req = routeRequest(req, "id", productID.String())
	rec := httptest.NewRecorder()
	DeleteProduct(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.deletedID != productID {
		t.Fatalf("expected delete for %s, got %s", productID, stub.deletedID)
	}

	var body types.Message
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Product deleted successfully" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
}

func TestListCategories(t *testing.T) {
	stub := &stubCatalogService{countsResult: []catalog.CategoryCountDTO{
		{Category: "Home", Count: 2},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	ListCategories(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body []catalog.CategoryCountDTO
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 1 || body[0].Category != "Home" || body[0].Count != 2 {
		t.Fatalf("unexpected body: %v", body)
	}
}
