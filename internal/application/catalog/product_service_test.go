package catalog

import (
	"context"
	"testing"

	"github.com/bizdash/backend/internal/domain/catalog"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/notification"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByBarcode(ctx context.Context, barcode string) (*catalog.Product, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestProduct(t *testing.T, name, barcode string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, "Electronics", decimal.NewFromFloat(89.99), 15, 20, barcode)
	require.NoError(t, err)
	return product
}

func validCreateRequest() CreateProductRequest {
	return CreateProductRequest{
		Name:          "Wireless Headphones",
		Category:      "Electronics",
		Price:         decimal.NewFromFloat(89.99),
		StockLevel:    15,
		MinStockLevel: 20,
		Barcode:       "WH-001-2023",
	}
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and notifies", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		notifier := notification.NewCenter(0)
		service := NewProductService(mockRepo, notifier)

		mockRepo.On("FindByBarcode", ctx, "WH-001-2023").Return(nil, nil)
		mockRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := service.Create(ctx, validCreateRequest())

		require.NoError(t, err)
		assert.Equal(t, "Wireless Headphones", resp.Name)
		assert.True(t, resp.LowStock)
		assert.Equal(t, "Product added successfully", notifier.Current().Message)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate barcode", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		notifier := notification.NewCenter(0)
		service := NewProductService(mockRepo, notifier)

		existing := newTestProduct(t, "Other", "WH-001-2023")
		mockRepo.On("FindByBarcode", ctx, "WH-001-2023").Return(existing, nil)

		_, err := service.Create(ctx, validCreateRequest())

		var ve *shared.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "barcode")
		assert.Equal(t, notification.SeverityError, notifier.Current().Severity)
		mockRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects invalid form with error notification", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		notifier := notification.NewCenter(0)
		service := NewProductService(mockRepo, notifier)

		mockRepo.On("FindByBarcode", ctx, "B-1").Return(nil, nil)

		req := validCreateRequest()
		req.Name = ""
		req.Price = decimal.Zero
		req.Barcode = "B-1"

		_, err := service.Create(ctx, req)

		var ve *shared.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "name")
		assert.Contains(t, ve.Fields, "price")
		assert.Equal(t, "Please fill in all required fields correctly.", notifier.Current().Message)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("keeping own barcode is allowed", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		notifier := notification.NewCenter(0)
		service := NewProductService(mockRepo, notifier)

		product := newTestProduct(t, "Wireless Headphones", "WH-001-2023")
		mockRepo.On("FindByID", ctx, product.GetID()).Return(product, nil)
		mockRepo.On("FindByBarcode", ctx, "WH-001-2023").Return(product, nil)
		mockRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		req := UpdateProductRequest(validCreateRequest())
		req.Name = "Wireless Headphones v2"

		resp, err := service.Update(ctx, product.GetID(), req)

		require.NoError(t, err)
		assert.Equal(t, "Wireless Headphones v2", resp.Name)
		assert.Equal(t, "Product updated successfully", notifier.Current().Message)
	})

	t.Run("rejects barcode held by another product", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, notification.NewCenter(0))

		product := newTestProduct(t, "Mine", "B-1")
		other := newTestProduct(t, "Other", "B-2")
		mockRepo.On("FindByID", ctx, product.GetID()).Return(product, nil)
		mockRepo.On("FindByBarcode", ctx, "B-2").Return(other, nil)

		req := UpdateProductRequest(validCreateRequest())
		req.Barcode = "B-2"

		_, err := service.Update(ctx, product.GetID(), req)

		var ve *shared.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "barcode")
	})

	t.Run("unknown product", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, notification.NewCenter(0))

		id := uuid.New()
		mockRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, id, UpdateProductRequest(validCreateRequest()))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := NewProductService(mockRepo, notification.NewCenter(0))

	headphones := newTestProduct(t, "Wireless Headphones", "WH-001")
	tshirt, err := catalog.NewProduct("Cotton T-Shirt", "Clothing", decimal.NewFromFloat(19.99), 50, 30, "CT-002")
	require.NoError(t, err)
	mockRepo.On("FindAll", ctx).Return([]*catalog.Product{headphones, tshirt}, nil)

	t.Run("search matches category", func(t *testing.T) {
		resp, err := service.List(ctx, "clothing")
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "Cotton T-Shirt", resp.Items[0].Name)
	})

	t.Run("empty search returns everything", func(t *testing.T) {
		resp, err := service.List(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})
}

func TestProductService_Categories(t *testing.T) {
	service := NewProductService(new(MockProductRepository), notification.NewCenter(0))

	resp := service.Categories()
	assert.Equal(t, catalog.Categories, resp.Categories)
}
