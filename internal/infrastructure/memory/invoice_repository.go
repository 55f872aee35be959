package memory

import (
	"context"
	"sync"

	"github.com/bizdash/backend/internal/domain/invoicing"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRepository is an in-memory implementation of
// invoicing.InvoiceRepository. It owns the invoice number sequence,
// which only moves forward so deleted invoices never free their number.
type InvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[uuid.UUID]*invoicing.Invoice
	order    []uuid.UUID
	sequence int64
}

// NewInvoiceRepository creates an empty in-memory invoice repository
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{
		invoices: make(map[uuid.UUID]*invoicing.Invoice),
	}
}

// FindByID finds an invoice by ID
func (r *InvoiceRepository) FindByID(_ context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	invoice, ok := r.invoices[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *invoice
	return &copied, nil
}

// FindAll returns all invoices in insertion order
func (r *InvoiceRepository) FindAll(_ context.Context) ([]*invoicing.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*invoicing.Invoice, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.invoices[id]
		result = append(result, &copied)
	}
	return result, nil
}

// Save creates or updates an invoice
func (r *InvoiceRepository) Save(_ context.Context, invoice *invoicing.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := invoice.GetID()
	if _, ok := r.invoices[id]; !ok {
		r.order = append(r.order, id)
	}
	copied := *invoice
	r.invoices[id] = &copied
	return nil
}

// Delete removes an invoice by ID. The number sequence is untouched.
func (r *InvoiceRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.invoices[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.invoices, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// NextNumber reserves and returns the next invoice sequence value
func (r *InvoiceRepository) NextNumber(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sequence++
	return r.sequence, nil
}

// SeedSequence advances the sequence to at least n. Used when loading
// demo invoices that carry preassigned numbers.
func (r *InvoiceRepository) SeedSequence(n int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n > r.sequence {
		r.sequence = n
	}
}

// Count returns the number of invoices
func (r *InvoiceRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.invoices)), nil
}
