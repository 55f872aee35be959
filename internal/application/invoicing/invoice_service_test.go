package invoicing

import (
	"context"
	"testing"

	"github.com/bizdash/backend/internal/domain/catalog"
	"github.com/bizdash/backend/internal/domain/invoicing"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/notification"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInvoiceRepository is a mock implementation of invoicing.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context) ([]*invoicing.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *invoicing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) NextNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

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

func newTestProduct(t *testing.T, name string, price float64) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, "Electronics", decimal.NewFromFloat(price), 10, 2, "B-"+name)
	require.NoError(t, err)
	return product
}

func newService(invoiceRepo *MockInvoiceRepository, productRepo *MockProductRepository, notifier *notification.Center) *InvoiceService {
	return NewInvoiceService(invoiceRepo, productRepo, notifier, nil)
}

func TestInvoiceService_RecordSale(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves lines and numbers the invoice", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		productRepo := new(MockProductRepository)
		notifier := notification.NewCenter(0)
		service := newService(invoiceRepo, productRepo, notifier)

		headphones := newTestProduct(t, "Wireless Headphones", 89.99)
		productRepo.On("FindByID", ctx, headphones.GetID()).Return(headphones, nil)
		invoiceRepo.On("NextNumber", ctx).Return(int64(4), nil)
		invoiceRepo.On("Save", ctx, mock.AnythingOfType("*invoicing.Invoice")).Return(nil)

		resp, err := service.RecordSale(ctx, RecordSaleRequest{
			CustomerName: "John Doe",
			Lines:        []LineDraft{{ProductID: headphones.GetID(), Quantity: 2}},
		})

		require.NoError(t, err)
		assert.Equal(t, "INV-004", resp.Number)
		assert.Equal(t, "Pending", resp.Status)
		assert.True(t, resp.Amount.Equal(decimal.NewFromFloat(179.98)))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Wireless Headphones", resp.Items[0].ProductName)
		assert.Equal(t, "Invoice created successfully", notifier.Current().Message)
	})

	t.Run("drops invalid drafts silently", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		productRepo := new(MockProductRepository)
		service := newService(invoiceRepo, productRepo, notification.NewCenter(0))

		headphones := newTestProduct(t, "Wireless Headphones", 89.99)
		missing := uuid.New()
		productRepo.On("FindByID", ctx, headphones.GetID()).Return(headphones, nil)
		productRepo.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)
		invoiceRepo.On("NextNumber", ctx).Return(int64(1), nil)
		invoiceRepo.On("Save", ctx, mock.AnythingOfType("*invoicing.Invoice")).Return(nil)

		resp, err := service.RecordSale(ctx, RecordSaleRequest{
			CustomerName: "John Doe",
			Lines: []LineDraft{
				{ProductID: headphones.GetID(), Quantity: 1},
				{ProductID: missing, Quantity: 1},
				{ProductID: headphones.GetID(), Quantity: 0},
			},
		})

		require.NoError(t, err)
		assert.Len(t, resp.Items, 1)
	})

	t.Run("requires at least one valid line", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		productRepo := new(MockProductRepository)
		service := newService(invoiceRepo, productRepo, notification.NewCenter(0))

		_, err := service.RecordSale(ctx, RecordSaleRequest{
			CustomerName: "John Doe",
			Lines:        []LineDraft{{ProductID: uuid.Nil, Quantity: 0}},
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMPTY_INVOICE", domainErr.Code)
		invoiceRepo.AssertNotCalled(t, "NextNumber")
	})
}

func TestInvoiceService_PreviewTotals(t *testing.T) {
	ctx := context.Background()
	invoiceRepo := new(MockInvoiceRepository)
	productRepo := new(MockProductRepository)
	service := newService(invoiceRepo, productRepo, notification.NewCenter(0))

	apples := newTestProduct(t, "Organic Apples", 4.99)
	productRepo.On("FindByID", ctx, apples.GetID()).Return(apples, nil)

	resp, err := service.PreviewTotals(ctx, PreviewTotalsRequest{
		Lines: []LineDraft{{ProductID: apples.GetID(), Quantity: 12}},
	})

	require.NoError(t, err)
	assert.True(t, resp.Amount.Equal(decimal.NewFromFloat(59.88)))
	invoiceRepo.AssertNotCalled(t, "Save")
}

func TestInvoiceService_MarkPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("pending becomes paid", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		notifier := notification.NewCenter(0)
		service := newService(invoiceRepo, new(MockProductRepository), notifier)

		invoice, err := invoicing.NewInvoice("INV-002", "Jane Smith",
			[]invoicing.InvoiceItem{invoicing.NewInvoiceItem("A", 1, decimal.NewFromInt(1))})
		require.NoError(t, err)

		invoiceRepo.On("FindByID", ctx, invoice.GetID()).Return(invoice, nil)
		invoiceRepo.On("Save", ctx, mock.AnythingOfType("*invoicing.Invoice")).Return(nil)

		resp, err := service.MarkPaid(ctx, invoice.GetID())
		require.NoError(t, err)
		assert.Equal(t, "Paid", resp.Status)
		assert.Equal(t, "Invoice INV-002 marked as paid", notifier.Current().Message)
	})

	t.Run("already paid stays paid", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		service := newService(invoiceRepo, new(MockProductRepository), notification.NewCenter(0))

		invoice, err := invoicing.NewInvoice("INV-001", "John Doe",
			[]invoicing.InvoiceItem{invoicing.NewInvoiceItem("A", 1, decimal.NewFromInt(1))})
		require.NoError(t, err)
		invoice.MarkPaid()

		invoiceRepo.On("FindByID", ctx, invoice.GetID()).Return(invoice, nil)
		invoiceRepo.On("Save", ctx, mock.AnythingOfType("*invoicing.Invoice")).Return(nil)

		resp, err := service.MarkPaid(ctx, invoice.GetID())
		require.NoError(t, err)
		assert.Equal(t, "Paid", resp.Status)
	})
}

func TestInvoiceService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the invoice and notifies", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		notifier := notification.NewCenter(0)
		service := newService(invoiceRepo, new(MockProductRepository), notifier)

		invoice, err := invoicing.NewInvoice("INV-002", "Jane Smith",
			[]invoicing.InvoiceItem{invoicing.NewInvoiceItem("A", 1, decimal.NewFromInt(1))})
		require.NoError(t, err)

		invoiceRepo.On("FindByID", ctx, invoice.GetID()).Return(invoice, nil)
		invoiceRepo.On("Delete", ctx, invoice.GetID()).Return(nil)

		require.NoError(t, service.Delete(ctx, invoice.GetID()))
		invoiceRepo.AssertExpectations(t)
		assert.Equal(t, "Invoice INV-002 deleted successfully", notifier.Current().Message)
	})

	t.Run("unknown invoice", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		service := newService(invoiceRepo, new(MockProductRepository), notification.NewCenter(0))

		id := uuid.New()
		invoiceRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		err := service.Delete(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		invoiceRepo.AssertNotCalled(t, "Delete", ctx, id)
	})
}

func TestInvoiceService_List(t *testing.T) {
	ctx := context.Background()
	invoiceRepo := new(MockInvoiceRepository)
	service := newService(invoiceRepo, new(MockProductRepository), notification.NewCenter(0))

	paid, err := invoicing.NewInvoice("INV-001", "John Doe",
		[]invoicing.InvoiceItem{invoicing.NewInvoiceItem("A", 1, decimal.NewFromInt(1))})
	require.NoError(t, err)
	paid.MarkPaid()
	pending, err := invoicing.NewInvoice("INV-002", "Jane Smith",
		[]invoicing.InvoiceItem{invoicing.NewInvoiceItem("B", 1, decimal.NewFromInt(2))})
	require.NoError(t, err)

	invoiceRepo.On("FindAll", ctx).Return([]*invoicing.Invoice{paid, pending}, nil)

	t.Run("status filter", func(t *testing.T) {
		resp, err := service.List(ctx, invoicing.InvoiceStatusPaid, "")
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "INV-001", resp.Items[0].Number)
	})

	t.Run("search by number", func(t *testing.T) {
		resp, err := service.List(ctx, "", "002")
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "Jane Smith", resp.Items[0].CustomerName)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := service.List(ctx, invoicing.InvoiceStatus("Overdue"), "")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATUS", domainErr.Code)
	})
}

func TestInvoiceService_SendEmailAndPrint(t *testing.T) {
	ctx := context.Background()
	invoiceRepo := new(MockInvoiceRepository)
	notifier := notification.NewCenter(0)
	service := newService(invoiceRepo, new(MockProductRepository), notifier)

	invoice, err := invoicing.NewInvoice("INV-003", "Acme Corporation",
		[]invoicing.InvoiceItem{invoicing.NewInvoiceItem("A", 1, decimal.NewFromInt(1))})
	require.NoError(t, err)
	invoiceRepo.On("FindByID", ctx, invoice.GetID()).Return(invoice, nil)

	require.NoError(t, service.SendEmail(ctx, invoice.GetID()))
	assert.Equal(t, "Invoice INV-003 sent by email", notifier.Current().Message)

	require.NoError(t, service.Print(ctx, invoice.GetID()))
	assert.Equal(t, "Invoice INV-003 sent to printer", notifier.Current().Message)
}
