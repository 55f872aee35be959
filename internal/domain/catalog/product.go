package catalog

import (
	"strings"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Categories lists the fixed set of product categories offered by the
// catalog form.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Grocery",
	"Home & Garden",
	"Toys",
	"Sports",
}

// IsValidCategory checks membership in the fixed category set
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Product represents a catalog item with stock tracking
type Product struct {
	shared.BaseEntity
	Name          string
	Category      string
	Price         decimal.Decimal
	StockLevel    int
	MinStockLevel int
	Barcode       string
}

// NewProduct creates a new product. Validation failures are reported per
// field and nothing is created.
func NewProduct(name, category string, price decimal.Decimal, stockLevel, minStockLevel int, barcode string) (*Product, error) {
	if err := validateProductForm(name, category, price, stockLevel, minStockLevel, barcode); err != nil {
		return nil, err
	}

	return &Product{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          strings.TrimSpace(name),
		Category:      category,
		Price:         price,
		StockLevel:    stockLevel,
		MinStockLevel: minStockLevel,
		Barcode:       strings.TrimSpace(barcode),
	}, nil
}

// Update replaces all editable fields in one step, or none on failure
func (p *Product) Update(name, category string, price decimal.Decimal, stockLevel, minStockLevel int, barcode string) error {
	if err := validateProductForm(name, category, price, stockLevel, minStockLevel, barcode); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Category = category
	p.Price = price
	p.StockLevel = stockLevel
	p.MinStockLevel = minStockLevel
	p.Barcode = strings.TrimSpace(barcode)
	p.UpdatedAt = time.Now()

	return nil
}

// IsLowStock reports whether the stock level has fallen strictly below
// the minimum threshold. Stock exactly at the minimum is not low.
func (p *Product) IsLowStock() bool {
	return p.StockLevel < p.MinStockLevel
}

// MatchesSearch reports whether the product's name or category contains
// the term, case-insensitively. An empty term matches everything.
func (p *Product) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}

func validateProductForm(name, category string, price decimal.Decimal, stockLevel, minStockLevel int, barcode string) error {
	ve := shared.NewValidationError()
	if strings.TrimSpace(name) == "" {
		ve.Add("name", "Name is required")
	}
	if !IsValidCategory(category) {
		ve.Add("category", "Category is required")
	}
	if !price.IsPositive() {
		ve.Add("price", "Price must be greater than zero")
	}
	if stockLevel < 0 {
		ve.Add("stockLevel", "Stock level must be zero or more")
	}
	if minStockLevel < 0 {
		ve.Add("minStockLevel", "Minimum stock level must be zero or more")
	}
	if strings.TrimSpace(barcode) == "" {
		ve.Add("barcode", "Barcode is required")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}
