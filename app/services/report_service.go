package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/pkg/collection"
)

// Stock levels the low-stock report cares about.
const (
	LowStockThreshold      = 20
	CriticalStockThreshold = 5
)

// TransactionReader is the read side of the transaction log the
// reports run over.
type TransactionReader interface {
	Since(from time.Time) ([]models.Transaction, error)
}

// SalesSummary aggregates the whole log.
type SalesSummary struct {
	Transactions int             `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
	ItemsSold    int             `json:"items_sold"`
	Discounted   int             `json:"discounted"`
}

// ProductSales is one row of the top-products report.
type ProductSales struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// DailySales is one day's takings.
type DailySales struct {
	Date         string          `json:"date"`
	Transactions int             `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// LowStockProduct flags a product that needs reordering.
type LowStockProduct struct {
	models.Product
	Critical bool `json:"critical"`
}

// ReportService answers the admin dashboard queries. All reports
// read from the transaction log's item snapshots, so deleted or
// renamed products still report under the name they sold as.
type ReportService struct {
	transactions TransactionReader
	products     ProductStore
	now          func() time.Time
}

func NewReportService(transactions TransactionReader, products ProductStore) *ReportService {
	return &ReportService{
		transactions: transactions,
		products:     products,
		now:          time.Now,
	}
}

// Summary totals every committed transaction.
func (s *ReportService) Summary() (SalesSummary, error) {
	trxs, err := s.transactions.Since(time.Time{})
	if err != nil {
		return SalesSummary{}, err
	}

	summary := SalesSummary{
		Transactions: len(trxs),
		Revenue:      decimal.Zero,
	}
	for _, t := range trxs {
		summary.Revenue = summary.Revenue.Add(t.Total)
		if t.Discount.IsPositive() {
			summary.Discounted++
		}
		for _, item := range t.Items {
			summary.ItemsSold += item.Quantity
		}
	}
	return summary, nil
}

// TopProducts returns the best sellers by unit count, at most limit
// rows.
func (s *ReportService) TopProducts(limit int) ([]ProductSales, error) {
	trxs, err := s.transactions.Since(time.Time{})
	if err != nil {
		return nil, err
	}

	var items []models.TransactionItem
	for _, t := range trxs {
		items = append(items, t.Items...)
	}

	byProduct := collection.GroupBy(items, func(i models.TransactionItem) uint { return i.ProductID })
	rows := collection.Map(collection.Keys(byProduct), func(id uint) ProductSales {
		row := ProductSales{ProductID: id, Revenue: decimal.Zero}
		for _, i := range byProduct[id] {
			row.ProductName = i.ProductName
			row.Quantity += i.Quantity
			row.Revenue = row.Revenue.Add(i.LineTotal)
		}
		return row
	})

	return collection.Take(collection.SortByDesc(rows, func(r ProductSales) int { return r.Quantity }), limit), nil
}

// DailySalesReport returns one row per day for the last `days` days,
// today included, oldest first. Days with no sales appear with zero
// values rather than being skipped.
func (s *ReportService) DailySalesReport(days int) ([]DailySales, error) {
	now := s.now()
	// midnight in the server's own zone, so the window lines up with
	// the local date labels below
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -(days - 1))

	trxs, err := s.transactions.Since(from)
	if err != nil {
		return nil, err
	}

	byDay := collection.GroupBy(trxs, func(t models.Transaction) string {
		return t.CreatedAt.Format("2006-01-02")
	})

	report := make([]DailySales, 0, days)
	for d := 0; d < days; d++ {
		date := from.AddDate(0, 0, d).Format("2006-01-02")
		row := DailySales{Date: date, Revenue: decimal.Zero}
		for _, t := range byDay[date] {
			row.Transactions++
			row.Revenue = row.Revenue.Add(t.Total)
		}
		report = append(report, row)
	}
	return report, nil
}

// LowStock lists products below the reorder threshold, flagging the
// ones at or under the critical level.
func (s *ReportService) LowStock() ([]LowStockProduct, error) {
	products, err := s.products.LowStock(LowStockThreshold)
	if err != nil {
		return nil, err
	}
	return collection.Map(products, func(p models.Product) LowStockProduct {
		return LowStockProduct{Product: p, Critical: p.Stock <= CriticalStockThreshold}
	}), nil
}
