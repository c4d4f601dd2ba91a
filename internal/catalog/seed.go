package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/pkg/db/models"
	pkgerrors "github.com/storefront-labs/storefront-backend/pkg/errors"
	"github.com/storefront-labs/storefront-backend/pkg/logger"
)

// SeedIfEmpty inserts the sample catalog when the products table is empty at
// that instant. It runs once at startup and is otherwise a no-op, so repeated
// boots do not duplicate the data.
func SeedIfEmpty(ctx context.Context, repo *Repository, logg *logger.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count products")
	}
	if count > 0 {
		return nil
	}

	if err := repo.CreateBatch(ctx, sampleProducts()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert sample products")
	}

	if logg != nil {
		logg.Info(ctx, "sample products created")
	}
	return nil
}

func sampleProducts() []models.Product {
	return []models.Product{
		{
			ID:          uuid.New(),
			Name:        "Premium Wireless Headphones",
			Description: "High-quality wireless headphones with noise cancellation and premium sound quality.",
			Price:       199.99,
			ImageURL:    "https://images.unsplash.com/photo-1498049794561-7780e7231661",
			Category:    "Electronics",
			Stock:       50,
		},
		{
			ID:          uuid.New(),
			Name:        "MacBook Pro 13-inch",
			Description: "Apple MacBook Pro with M2 chip, perfect for professionals and creatives.",
			Price:       1299.99,
			ImageURL:    "https://images.unsplash.com/photo-1611186871348-b1ce696e52c9",
			Category:    "Electronics",
			Stock:       25,
		},
		{
			ID:          uuid.New(),
			Name:        "Modern Tech Workspace Setup",
			Description: "Complete workspace setup with monitor, keyboard, and accessories.",
			Price:       899.99,
			ImageURL:    "https://images.unsplash.com/photo-1588508065123-287b28e013da",
			Category:    "Electronics",
			Stock:       15,
		},
		{
			ID:          uuid.New(),
			Name:        "Designer Shopping Collection",
			Description: "Curated fashion collection with premium shopping bags and accessories.",
			Price:       149.99,
			ImageURL:    "https://images.unsplash.com/photo-1483985988355-763728e1935b",
			Category:    "Fashion",
			Stock:       30,
		},
		{
			ID:          uuid.New(),
			Name:        "Stylish Sunglasses",
			Description: "Premium designer sunglasses with UV protection and modern styling.",
			Price:       89.99,
			ImageURL:    "https://images.unsplash.com/photo-1529139574466-a303027c1d8b",
			Category:    "Fashion",
			Stock:       100,
		},
		{
			ID:          uuid.New(),
			Name:        "Premium Beauty Set",
			Description: "Luxury beauty and cosmetic products for your skincare routine.",
			Price:       79.99,
			ImageURL:    "https://images.unsplash.com/photo-1629198688000-71f23e745b6e",
			Category:    "Beauty",
			Stock:       60,
		},
		{
			ID:          uuid.New(),
			Name:        "Nike Air Max Sneakers",
			Description: "Classic Nike Air Max sneakers with comfortable fit and iconic design.",
			Price:       129.99,
			ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff",
			Category:    "Fashion",
			Stock:       75,
		},
		{
			ID:          uuid.New(),
			Name:        "Wireless Bluetooth Headphones",
			Description: "Compact wireless headphones with excellent sound quality and long battery life.",
			Price:       79.99,
			ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
			Category:    "Electronics",
			Stock:       80,
		},
	}
}
