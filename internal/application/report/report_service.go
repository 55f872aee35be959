package report

import (
	"strings"
	"sync"
	"time"

	"github.com/bizdash/backend/internal/domain/report"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/notification"
)

// ReportService serves the analytics view: sales trend series, top
// products, customer spend records, and simulated exports.
type ReportService struct {
	generator *report.SeriesGenerator
	notifier  *notification.Center

	mu       sync.Mutex
	expanded int // customer ID currently expanded, 0 for none
}

// NewReportService creates a new ReportService
func NewReportService(generator *report.SeriesGenerator, notifier *notification.Center) *ReportService {
	return &ReportService{
		generator: generator,
		notifier:  notifier,
	}
}

// SalesTrend generates a series for the requested granularity. The chart
// type defaults to bar and is echoed back as a rendering hint.
func (s *ReportService) SalesTrend(req SalesTrendRequest) (*SalesTrendResponse, error) {
	granularity := report.Granularity(req.Granularity)
	if !granularity.IsValid() {
		return nil, shared.NewDomainError("INVALID_GRANULARITY", "Granularity must be daily, weekly, monthly, or custom")
	}

	chartType := report.ChartTypeBar
	if req.ChartType != "" {
		chartType = report.ChartType(req.ChartType)
		if !chartType.IsValid() {
			return nil, shared.NewDomainError("INVALID_CHART_TYPE", "Chart type must be 'bar', 'line', or 'pie'")
		}
	}

	var start, end time.Time
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}

	points, err := s.generator.Generate(granularity, start, end)
	if err != nil {
		return nil, err
	}

	return &SalesTrendResponse{
		Granularity: string(granularity),
		ChartType:   string(chartType),
		Points:      toSalesPointResponses(points),
	}, nil
}

// TopProducts returns the top products report
func (s *ReportService) TopProducts() []ProductStatResponse {
	stats := report.TopProducts()
	out := make([]ProductStatResponse, 0, len(stats))
	for _, stat := range stats {
		out = append(out, ProductStatResponse{
			ID:      stat.ID,
			Name:    stat.Name,
			Sales:   stat.Sales,
			Revenue: stat.Revenue,
		})
	}
	return out
}

// Customers returns the customer spend report. At most one customer is
// expanded at a time.
func (s *ReportService) Customers() []CustomerReportResponse {
	s.mu.Lock()
	expanded := s.expanded
	s.mu.Unlock()

	records := report.TopCustomers()
	out := make([]CustomerReportResponse, 0, len(records))
	for _, record := range records {
		transactions := make([]CustomerTransactionResponse, 0, len(record.Transactions))
		for _, tx := range record.Transactions {
			transactions = append(transactions, CustomerTransactionResponse{
				ID:     tx.ID,
				Date:   tx.Date,
				Amount: tx.Amount,
				Items:  tx.Items,
			})
		}
		out = append(out, CustomerReportResponse{
			ID:           record.ID,
			Name:         record.Name,
			Email:        record.Email,
			TotalSpent:   record.TotalSpent,
			Expanded:     record.ID == expanded,
			Transactions: transactions,
		})
	}
	return out
}

// ToggleCustomerDetail expands the given customer's history, collapsing
// any other. Toggling the expanded customer collapses it.
func (s *ReportService) ToggleCustomerDetail(customerID int) error {
	found := false
	for _, record := range report.TopCustomers() {
		if record.ID == customerID {
			found = true
			break
		}
	}
	if !found {
		return shared.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expanded == customerID {
		s.expanded = 0
	} else {
		s.expanded = customerID
	}
	return nil
}

// Export simulates exporting the current report in the given format
func (s *ReportService) Export(req ExportRequest) *ExportResponse {
	message := "Report exported successfully as " + strings.ToUpper(req.Format)
	s.notifier.Success(message)
	return &ExportResponse{Message: message}
}
