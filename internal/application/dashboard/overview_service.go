package dashboard

import (
	"context"

	"github.com/bizdash/backend/internal/domain/catalog"
	"github.com/bizdash/backend/internal/domain/invoicing"
	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// StockSlice is one segment of the stock health breakdown
type StockSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// OverviewResponse aggregates the live stores into the landing view
type OverviewResponse struct {
	TotalProducts   int             `json:"total_products"`
	TotalStock      int             `json:"total_stock"`
	LowStockCount   int             `json:"low_stock_count"`
	LowStockItems   []LowStockItem  `json:"low_stock_items"`
	StockBreakdown  []StockSlice    `json:"stock_breakdown"`
	TotalCustomers  int64           `json:"total_customers"`
	TotalSuppliers  int64           `json:"total_suppliers"`
	TotalInvoices   int             `json:"total_invoices"`
	PendingInvoices int             `json:"pending_invoices"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
}

// LowStockItem is one product below its minimum stock level
type LowStockItem struct {
	Name          string `json:"name"`
	StockLevel    int    `json:"stock_level"`
	MinStockLevel int    `json:"min_stock_level"`
}

// OverviewService computes dashboard aggregates from the live stores
type OverviewService struct {
	productRepo catalog.ProductRepository
	partyRepo   partner.PartyRepository
	invoiceRepo invoicing.InvoiceRepository
}

// NewOverviewService creates a new OverviewService
func NewOverviewService(productRepo catalog.ProductRepository, partyRepo partner.PartyRepository, invoiceRepo invoicing.InvoiceRepository) *OverviewService {
	return &OverviewService{
		productRepo: productRepo,
		partyRepo:   partyRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Overview builds the aggregate view. Revenue sums paid invoices only.
func (s *OverviewService) Overview(ctx context.Context) (*OverviewResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &OverviewResponse{
		TotalProducts: len(products),
		LowStockItems: make([]LowStockItem, 0),
		TotalRevenue:  decimal.Zero,
	}

	for _, product := range products {
		resp.TotalStock += product.StockLevel
		if product.IsLowStock() {
			resp.LowStockCount++
			resp.LowStockItems = append(resp.LowStockItems, LowStockItem{
				Name:          product.Name,
				StockLevel:    product.StockLevel,
				MinStockLevel: product.MinStockLevel,
			})
		}
	}
	resp.StockBreakdown = []StockSlice{
		{Name: "Low Stock", Value: resp.LowStockCount},
		{Name: "Adequate Stock", Value: resp.TotalProducts - resp.LowStockCount},
	}

	if resp.TotalCustomers, err = s.partyRepo.Count(ctx, partner.PartyKindCustomer); err != nil {
		return nil, err
	}
	if resp.TotalSuppliers, err = s.partyRepo.Count(ctx, partner.PartyKindSupplier); err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp.TotalInvoices = len(invoices)
	for _, invoice := range invoices {
		if invoice.IsPaid() {
			resp.TotalRevenue = resp.TotalRevenue.Add(invoice.Amount)
		} else {
			resp.PendingInvoices++
		}
	}

	return resp, nil
}
