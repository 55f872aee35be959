package invoicing

import (
	"fmt"
	"strings"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "Pending"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// InvoiceItem is a line captured at sale time. Name and price are
// snapshots of the product as it was when the sale was recorded.
type InvoiceItem struct {
	ProductName string
	Quantity    int
	Price       decimal.Decimal
	Total       decimal.Decimal
}

// NewInvoiceItem builds a line with its extended total
func NewInvoiceItem(productName string, quantity int, price decimal.Decimal) InvoiceItem {
	return InvoiceItem{
		ProductName: productName,
		Quantity:    quantity,
		Price:       price,
		Total:       price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// Invoice represents a recorded sale. The amount is the sum of line
// totals, fixed at creation.
type Invoice struct {
	shared.BaseEntity
	Number       string
	CustomerName string
	Date         time.Time
	Amount       decimal.Decimal
	Status       InvoiceStatus
	Items        []InvoiceItem
}

// FormatNumber renders a sequence value as a display number, e.g. INV-004
func FormatNumber(seq int64) string {
	return fmt.Sprintf("INV-%03d", seq)
}

// NewInvoice records a sale as a pending invoice dated now. At least one
// line is required.
func NewInvoice(number, customerName string, items []InvoiceItem) (*Invoice, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, shared.NewDomainError("MISSING_CUSTOMER", "Customer name is required")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_INVOICE", "At least one item is required")
	}

	amount := decimal.Zero
	for _, item := range items {
		amount = amount.Add(item.Total)
	}

	return &Invoice{
		BaseEntity:   shared.NewBaseEntity(),
		Number:       number,
		CustomerName: strings.TrimSpace(customerName),
		Date:         time.Now(),
		Amount:       amount,
		Status:       InvoiceStatusPending,
		Items:        items,
	}, nil
}

// MarkPaid transitions the invoice to Paid. Marking an already paid
// invoice is a no-op.
func (i *Invoice) MarkPaid() {
	if i.Status == InvoiceStatusPaid {
		return
	}
	i.Status = InvoiceStatusPaid
	i.UpdatedAt = time.Now()
}

// IsPaid returns true if the invoice has been paid
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// MatchesFilter applies the ledger's combined status and search filter.
// An empty status means all statuses; the term matches the customer name
// or invoice number, case-insensitively.
func (i *Invoice) MatchesFilter(status InvoiceStatus, term string) bool {
	if status != "" && i.Status != status {
		return false
	}
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(i.CustomerName), term) ||
		strings.Contains(strings.ToLower(i.Number), term)
}
