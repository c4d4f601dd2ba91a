package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/pkg/db/models"
)

// ProductDTO is the transport shape of a catalog document.
type ProductDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProductInput carries the fields accepted when creating a listing.
// Stock defaults to zero when omitted.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"min=0"`
	ImageURL    string  `json:"image_url" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Stock       int     `json:"stock"`
}

// UpdateProductInput is a sparse update: only non-nil fields are written.
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
}

// ListFilters describe the browse endpoint's filter knobs. Category is an
// exact match; Search is a case-insensitive substring match against name or
// description. Both combine with AND.
type ListFilters struct {
	Category string
	Search   string
}

// CategoryCountDTO is one row of the category aggregation.
type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}

	return &ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
	}
}

func (in CreateProductInput) toModel() *models.Product {
	return &models.Product{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Stock:       in.Stock,
	}
}

// changes maps the supplied fields to their column values.
func (in UpdateProductInput) changes() map[string]any {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Stock != nil {
		fields["stock"] = *in.Stock
	}
	return fields
}
