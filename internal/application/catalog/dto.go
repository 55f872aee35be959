package catalog

import (
	"time"

	"github.com/bizdash/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Category      string          `json:"category" binding:"required"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	StockLevel    int             `json:"stock_level" binding:"min=0"`
	MinStockLevel int             `json:"min_stock_level" binding:"min=0"`
	Barcode       string          `json:"barcode" binding:"required,min=1,max=100"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Category      string          `json:"category" binding:"required"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	StockLevel    int             `json:"stock_level" binding:"min=0"`
	MinStockLevel int             `json:"min_stock_level" binding:"min=0"`
	Barcode       string          `json:"barcode" binding:"required,min=1,max=100"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	StockLevel    int             `json:"stock_level"`
	MinStockLevel int             `json:"min_stock_level"`
	Barcode       string          `json:"barcode"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse represents the result of a product listing
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CategoriesResponse lists the selectable product categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.GetID(),
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		StockLevel:    p.StockLevel,
		MinStockLevel: p.MinStockLevel,
		Barcode:       p.Barcode,
		LowStock:      p.IsLowStock(),
		CreatedAt:     p.GetCreatedAt(),
		UpdatedAt:     p.GetUpdatedAt(),
	}
}
