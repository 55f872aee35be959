package memory

import (
	"context"
	"fmt"

	"github.com/bizdash/backend/internal/domain/catalog"
	"github.com/bizdash/backend/internal/domain/invoicing"
	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// Stores bundles the in-memory repositories so they can be wired and
// seeded together.
type Stores struct {
	Parties  *PartyRepository
	Products *ProductRepository
	Invoices *InvoiceRepository
}

// NewStores creates the full set of empty in-memory repositories
func NewStores() *Stores {
	return &Stores{
		Parties:  NewPartyRepository(),
		Products: NewProductRepository(),
		Invoices: NewInvoiceRepository(),
	}
}

// Seed loads the demonstration dataset: two customers, one supplier,
// five products, and three invoices. The invoice sequence is advanced
// past the seeded numbers.
func (s *Stores) Seed(ctx context.Context) error {
	if err := s.seedParties(ctx); err != nil {
		return fmt.Errorf("seeding parties: %w", err)
	}
	if err := s.seedProducts(ctx); err != nil {
		return fmt.Errorf("seeding products: %w", err)
	}
	if err := s.seedInvoices(ctx); err != nil {
		return fmt.Errorf("seeding invoices: %w", err)
	}
	return nil
}

func (s *Stores) seedParties(ctx context.Context) error {
	seeds := []struct {
		kind                      partner.PartyKind
		name, email, phone, notes string
	}{
		{partner.PartyKindCustomer, "John Doe", "john.doe@example.com", "+1-555-1234", "Preferred customer"},
		{partner.PartyKindCustomer, "Jane Smith", "jane.smith@example.com", "+1-555-5678", "Corporate account"},
		{partner.PartyKindSupplier, "Acme Corp", "procurement@acme.com", "+1-555-9012", "Bulk supplier"},
	}
	for _, seed := range seeds {
		party, err := partner.NewParty(seed.kind, seed.name, seed.email, seed.phone, seed.notes)
		if err != nil {
			return err
		}
		if err := s.Parties.Save(ctx, party); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stores) seedProducts(ctx context.Context) error {
	seeds := []struct {
		name, category  string
		price           float64
		stock, minStock int
		barcode         string
	}{
		{"Wireless Headphones", "Electronics", 89.99, 15, 20, "WH-001-2023"},
		{"Cotton T-Shirt", "Clothing", 19.99, 50, 30, "CT-002-2023"},
		{"Organic Apples", "Grocery", 4.99, 8, 25, "OA-003-2023"},
		{"Coffee Maker", "Home & Garden", 79.99, 12, 10, "CM-004-2023"},
		{"Lego Set", "Toys", 49.99, 3, 15, "LS-005-2023"},
	}
	for _, seed := range seeds {
		product, err := catalog.NewProduct(seed.name, seed.category, decimal.NewFromFloat(seed.price), seed.stock, seed.minStock, seed.barcode)
		if err != nil {
			return err
		}
		if err := s.Products.Save(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stores) seedInvoices(ctx context.Context) error {
	seeds := []struct {
		number, customer string
		status           invoicing.InvoiceStatus
		items            []invoicing.InvoiceItem
	}{
		{
			"INV-001", "John Doe", invoicing.InvoiceStatusPaid,
			[]invoicing.InvoiceItem{invoicing.NewInvoiceItem("Wireless Headphones", 2, decimal.NewFromFloat(89.99))},
		},
		{
			"INV-002", "Jane Smith", invoicing.InvoiceStatusPending,
			[]invoicing.InvoiceItem{invoicing.NewInvoiceItem("Organic Apples (1kg)", 12, decimal.NewFromFloat(4.99))},
		},
		{
			"INV-003", "Acme Corporation", invoicing.InvoiceStatusPaid,
			[]invoicing.InvoiceItem{invoicing.NewInvoiceItem("Coffee Maker", 5, decimal.NewFromFloat(79.99))},
		},
	}
	for _, seed := range seeds {
		invoice, err := invoicing.NewInvoice(seed.number, seed.customer, seed.items)
		if err != nil {
			return err
		}
		if seed.status == invoicing.InvoiceStatusPaid {
			invoice.MarkPaid()
		}
		if err := s.Invoices.Save(ctx, invoice); err != nil {
			return err
		}
	}
	s.Invoices.SeedSequence(int64(len(seeds)))
	return nil
}
