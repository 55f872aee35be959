package invoicing

import (
	"time"

	"github.com/bizdash/backend/internal/domain/invoicing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineDraft is one row of the sale form. Drafts referencing an unknown
// product or a non-positive quantity are skipped when the sale is
// recorded.
type LineDraft struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// RecordSaleRequest represents a request to record a sale
type RecordSaleRequest struct {
	CustomerName string      `json:"customer_name" binding:"required,min=1,max=200"`
	Lines        []LineDraft `json:"lines" binding:"required"`
}

// InvoiceItemResponse represents an invoice line in API responses
type InvoiceItemResponse struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID           uuid.UUID             `json:"id"`
	Number       string                `json:"number"`
	CustomerName string                `json:"customer_name"`
	Date         time.Time             `json:"date"`
	Amount       decimal.Decimal       `json:"amount"`
	Status       string                `json:"status"`
	Items        []InvoiceItemResponse `json:"items"`
}

// InvoiceListResponse represents the result of an invoice listing
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Total int               `json:"total"`
}

// PreviewTotalsRequest asks for the running total of a draft sale
type PreviewTotalsRequest struct {
	Lines []LineDraft `json:"lines" binding:"required"`
}

// PreviewTotalsResponse carries the resolved lines and their sum
type PreviewTotalsResponse struct {
	Items  []InvoiceItemResponse `json:"items"`
	Amount decimal.Decimal       `json:"amount"`
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(inv *invoicing.Invoice) *InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, InvoiceItemResponse{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total,
		})
	}

	return &InvoiceResponse{
		ID:           inv.GetID(),
		Number:       inv.Number,
		CustomerName: inv.CustomerName,
		Date:         inv.Date,
		Amount:       inv.Amount,
		Status:       string(inv.Status),
		Items:        items,
	}
}
