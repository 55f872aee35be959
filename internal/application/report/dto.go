package report

import (
	"time"

	"github.com/bizdash/backend/internal/domain/report"
	"github.com/shopspring/decimal"
)

// SalesTrendRequest selects the series to generate. Start and end are
// only consulted for the custom granularity.
type SalesTrendRequest struct {
	Granularity string     `form:"granularity" binding:"required"`
	ChartType   string     `form:"chart_type"`
	StartDate   *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate     *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// SalesPointResponse is one bucket of the sales trend
type SalesPointResponse struct {
	Label  string `json:"label"`
	Sales  int64  `json:"sales"`
	Orders int64  `json:"orders"`
}

// SalesTrendResponse carries the generated series and its rendering hint
type SalesTrendResponse struct {
	Granularity string               `json:"granularity"`
	ChartType   string               `json:"chart_type"`
	Points      []SalesPointResponse `json:"points"`
}

// ProductStatResponse is one row of the top products report
type ProductStatResponse struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Sales   int64           `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}

// CustomerTransactionResponse is one purchase of a reported customer
type CustomerTransactionResponse struct {
	ID     int             `json:"id"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Items  int             `json:"items"`
}

// CustomerReportResponse is one row of the customer spend report. Only
// the expanded customer carries Expanded=true.
type CustomerReportResponse struct {
	ID           int                           `json:"id"`
	Name         string                        `json:"name"`
	Email        string                        `json:"email"`
	TotalSpent   decimal.Decimal               `json:"total_spent"`
	Expanded     bool                          `json:"expanded"`
	Transactions []CustomerTransactionResponse `json:"transactions"`
}

// ExportRequest asks for a simulated report export
type ExportRequest struct {
	Format string `json:"format" binding:"required,oneof=pdf csv excel"`
}

// ExportResponse confirms a simulated export
type ExportResponse struct {
	Message string `json:"message"`
}

func toSalesPointResponses(points []report.SalesPoint) []SalesPointResponse {
	out := make([]SalesPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, SalesPointResponse{Label: p.Label, Sales: p.Sales, Orders: p.Orders})
	}
	return out
}
