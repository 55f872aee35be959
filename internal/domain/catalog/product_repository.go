package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByBarcode finds a product by its barcode, or nil when absent
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// FindAll returns all products in insertion order
	FindAll(ctx context.Context) ([]*Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete removes a product by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of products
	Count(ctx context.Context) (int64, error)
}
