package catalog

import (
	"context"

	"github.com/bizdash/backend/internal/domain/catalog"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/notification"
	"github.com/google/uuid"
)

const invalidFormMessage = "Please fill in all required fields correctly."

// ProductService handles product catalog operations
type ProductService struct {
	productRepo catalog.ProductRepository
	notifier    *notification.Center
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, notifier *notification.Center) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		notifier:    notifier,
	}
}

// Create creates a new product. The barcode must not collide with any
// existing product.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if err := s.checkBarcode(ctx, req.Barcode, uuid.Nil); err != nil {
		s.notifier.Error(invalidFormMessage)
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, req.Category, req.Price, req.StockLevel, req.MinStockLevel, req.Barcode)
	if err != nil {
		s.notifier.Error(invalidFormMessage)
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.notifier.Success("Product added successfully")
	return ToProductResponse(product), nil
}

// Update updates an existing product. The barcode must not collide with
// any other product; keeping its own barcode is fine.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkBarcode(ctx, req.Barcode, id); err != nil {
		s.notifier.Error(invalidFormMessage)
		return nil, err
	}

	if err := product.Update(req.Name, req.Category, req.Price, req.StockLevel, req.MinStockLevel, req.Barcode); err != nil {
		s.notifier.Error(invalidFormMessage)
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.notifier.Success("Product updated successfully")
	return ToProductResponse(product), nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.Success("Product deleted successfully")
	return nil
}

// Get returns a single product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List returns all products, optionally narrowed by a search term
// matching name or category.
func (s *ProductService) List(ctx context.Context, search string) (*ProductListResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		if !product.MatchesSearch(search) {
			continue
		}
		items = append(items, *ToProductResponse(product))
	}

	return &ProductListResponse{Items: items, Total: len(items)}, nil
}

// Categories returns the fixed category set offered by the product form
func (s *ProductService) Categories() *CategoriesResponse {
	return &CategoriesResponse{Categories: catalog.Categories}
}

// checkBarcode rejects a barcode already used by a different product
func (s *ProductService) checkBarcode(ctx context.Context, barcode string, selfID uuid.UUID) error {
	existing, err := s.productRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return err
	}
	if existing != nil && existing.GetID() != selfID {
		ve := shared.NewValidationError()
		ve.Add("barcode", "Barcode must be unique")
		return ve
	}
	return nil
}
