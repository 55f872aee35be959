package invoicing

import (
	"context"
	"errors"

	"github.com/bizdash/backend/internal/domain/catalog"
	"github.com/bizdash/backend/internal/domain/invoicing"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/notification"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// InvoiceService handles the sales invoice ledger
type InvoiceService struct {
	invoiceRepo invoicing.InvoiceRepository
	productRepo catalog.ProductRepository
	notifier    *notification.Center
	logger      *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo invoicing.InvoiceRepository, productRepo catalog.ProductRepository, notifier *notification.Center, logger *zap.Logger) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// RecordSale resolves the line drafts against the catalog and records a
// pending invoice. Drafts referencing unknown products or non-positive
// quantities are dropped; at least one valid line must remain.
func (s *InvoiceService) RecordSale(ctx context.Context, req RecordSaleRequest) (*InvoiceResponse, error) {
	items, err := s.resolveLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_INVOICE", "At least one valid item is required")
	}

	seq, err := s.invoiceRepo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	invoice, err := invoicing.NewInvoice(invoicing.FormatNumber(seq), req.CustomerName, items)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.notifier.Success("Invoice created successfully")
	return ToInvoiceResponse(invoice), nil
}

// PreviewTotals resolves draft lines without recording anything, so the
// sale form can show a running total.
func (s *InvoiceService) PreviewTotals(ctx context.Context, req PreviewTotalsRequest) (*PreviewTotalsResponse, error) {
	items, err := s.resolveLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	resp := &PreviewTotalsResponse{
		Items:  make([]InvoiceItemResponse, 0, len(items)),
		Amount: decimal.Zero,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, InvoiceItemResponse{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total,
		})
		resp.Amount = resp.Amount.Add(item.Total)
	}
	return resp, nil
}

// MarkPaid transitions an invoice to Paid. Already paid invoices are
// left untouched.
func (s *InvoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	invoice.MarkPaid()
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.notifier.Success("Invoice " + invoice.Number + " marked as paid")
	return ToInvoiceResponse(invoice), nil
}

// Delete removes an invoice from the ledger. Its number is never reused.
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.Success("Invoice " + invoice.Number + " deleted successfully")
	return nil
}

// Get returns a single invoice by ID
func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(invoice), nil
}

// List returns invoices matching the combined status and search filter.
// An empty status means all statuses; the search term matches customer
// name or invoice number.
func (s *InvoiceService) List(ctx context.Context, status invoicing.InvoiceStatus, search string) (*InvoiceListResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Status must be 'Pending' or 'Paid'")
	}

	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		if !invoice.MatchesFilter(status, search) {
			continue
		}
		items = append(items, *ToInvoiceResponse(invoice))
	}

	return &InvoiceListResponse{Items: items, Total: len(items)}, nil
}

// SendEmail simulates emailing an invoice to the customer
func (s *InvoiceService) SendEmail(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Info("invoice email requested",
		zap.String("number", invoice.Number),
		zap.String("customer", invoice.CustomerName))
	s.notifier.Success("Invoice " + invoice.Number + " sent by email")
	return nil
}

// Print simulates printing an invoice
func (s *InvoiceService) Print(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Info("invoice print requested", zap.String("number", invoice.Number))
	s.notifier.Success("Invoice " + invoice.Number + " sent to printer")
	return nil
}

func (s *InvoiceService) resolveLines(ctx context.Context, drafts []LineDraft) ([]invoicing.InvoiceItem, error) {
	items := make([]invoicing.InvoiceItem, 0, len(drafts))
	for _, draft := range drafts {
		if draft.Quantity <= 0 || draft.ProductID == uuid.Nil {
			continue
		}
		product, err := s.productRepo.FindByID(ctx, draft.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return nil, err
		}
		items = append(items, invoicing.NewInvoiceItem(product.Name, draft.Quantity, product.Price))
	}
	return items, nil
}
