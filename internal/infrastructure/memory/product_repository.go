package memory

import (
	"context"
	"sync"

	"github.com/bizdash/backend/internal/domain/catalog"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository is an in-memory implementation of
// catalog.ProductRepository.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*catalog.Product
	order    []uuid.UUID
}

// NewProductRepository creates an empty in-memory product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[uuid.UUID]*catalog.Product),
	}
}

// FindByID finds a product by ID
func (r *ProductRepository) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *product
	return &copied, nil
}

// FindByBarcode finds a product by its barcode, or nil when absent
func (r *ProductRepository) FindByBarcode(_ context.Context, barcode string) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, product := range r.products {
		if product.Barcode == barcode {
			copied := *product
			return &copied, nil
		}
	}
	return nil, nil
}

// FindAll returns all products in insertion order
func (r *ProductRepository) FindAll(_ context.Context) ([]*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*catalog.Product, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.products[id]
		result = append(result, &copied)
	}
	return result, nil
}

// Save creates or updates a product
func (r *ProductRepository) Save(_ context.Context, product *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := product.GetID()
	if _, ok := r.products[id]; !ok {
		r.order = append(r.order, id)
	}
	copied := *product
	r.products[id] = &copied
	return nil
}

// Delete removes a product by ID
func (r *ProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.products, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Count returns the number of products
func (r *ProductRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}
