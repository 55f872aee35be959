package invoicing

import (
	"context"

	"github.com/google/uuid"
)

// InvoiceRepository defines the persistence interface for invoices
type InvoiceRepository interface {
	// FindByID finds an invoice by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindAll returns all invoices in insertion order
	FindAll(ctx context.Context) ([]*Invoice, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *Invoice) error

	// Delete removes an invoice by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// NextNumber reserves and returns the next invoice sequence value.
	// The sequence only ever moves forward, so numbers are never reused
	// even after deletions.
	NextNumber(ctx context.Context) (int64, error)

	// Count returns the number of invoices
	Count(ctx context.Context) (int64, error)
}
