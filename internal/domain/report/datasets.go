package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSalesStat is one row of the top products report
type ProductSalesStat struct {
	ID      int
	Name    string
	Sales   int64
	Revenue decimal.Decimal
}

// CustomerTransaction is one purchase in a customer's spend history
type CustomerTransaction struct {
	ID     int
	Date   time.Time
	Amount decimal.Decimal
	Items  int
}

// CustomerSpendRecord is one row of the customer spend report with its
// expandable transaction history
type CustomerSpendRecord struct {
	ID           int
	Name         string
	Email        string
	TotalSpent   decimal.Decimal
	Transactions []CustomerTransaction
}

// TopProducts returns the demonstration top products dataset, ordered by
// units sold descending.
func TopProducts() []ProductSalesStat {
	return []ProductSalesStat{
		{ID: 1, Name: "Premium Wireless Headphones", Sales: 345, Revenue: decimal.NewFromInt(86250)},
		{ID: 2, Name: "Smart Fitness Watch", Sales: 289, Revenue: decimal.NewFromInt(57800)},
		{ID: 3, Name: "Portable Bluetooth Speaker", Sales: 245, Revenue: decimal.NewFromInt(24500)},
		{ID: 4, Name: "Gaming Laptop", Sales: 187, Revenue: decimal.NewFromInt(187000)},
		{ID: 5, Name: "4K Ultra HD TV", Sales: 156, Revenue: decimal.NewFromInt(156000)},
		{ID: 6, Name: "Wireless Charging Pad", Sales: 134, Revenue: decimal.NewFromInt(6700)},
		{ID: 7, Name: "Smart Home Hub", Sales: 98, Revenue: decimal.NewFromInt(29400)},
		{ID: 8, Name: "Noise Cancelling Earbuds", Sales: 87, Revenue: decimal.NewFromInt(17400)},
	}
}

// TopCustomers returns the demonstration customer spend dataset
func TopCustomers() []CustomerSpendRecord {
	return []CustomerSpendRecord{
		{
			ID: 1, Name: "John Smith", Email: "john.smith@email.com",
			TotalSpent: decimal.NewFromFloat(1250.00),
			Transactions: []CustomerTransaction{
				{ID: 101, Date: date(2023, 11, 15), Amount: decimal.NewFromFloat(299.99), Items: 2},
				{ID: 102, Date: date(2023, 10, 28), Amount: decimal.NewFromFloat(149.99), Items: 1},
				{ID: 103, Date: date(2023, 9, 12), Amount: decimal.NewFromFloat(800.02), Items: 3},
			},
		},
		{
			ID: 2, Name: "Sarah Johnson", Email: "sarah.j@email.com",
			TotalSpent: decimal.NewFromFloat(895.50),
			Transactions: []CustomerTransaction{
				{ID: 104, Date: date(2023, 11, 10), Amount: decimal.NewFromFloat(199.99), Items: 1},
				{ID: 105, Date: date(2023, 10, 5), Amount: decimal.NewFromFloat(695.51), Items: 2},
			},
		},
		{
			ID: 3, Name: "Michael Brown", Email: "m.brown@email.com",
			TotalSpent: decimal.NewFromFloat(2150.75),
			Transactions: []CustomerTransaction{
				{ID: 106, Date: date(2023, 11, 20), Amount: decimal.NewFromFloat(1299.99), Items: 1},
				{ID: 107, Date: date(2023, 11, 2), Amount: decimal.NewFromFloat(549.99), Items: 1},
				{ID: 108, Date: date(2023, 10, 15), Amount: decimal.NewFromFloat(300.77), Items: 2},
			},
		},
		{
			ID: 4, Name: "Emily Davis", Email: "emily.d@email.com",
			TotalSpent: decimal.NewFromFloat(675.25),
			Transactions: []CustomerTransaction{
				{ID: 109, Date: date(2023, 11, 8), Amount: decimal.NewFromFloat(349.99), Items: 1},
				{ID: 110, Date: date(2023, 10, 22), Amount: decimal.NewFromFloat(325.26), Items: 2},
			},
		},
	}
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
