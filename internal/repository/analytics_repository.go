package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CategorySales is the summed sale value for one category. Categories with no
// sales are absent, not zero.
type CategorySales struct {
	Category string
	Total    decimal.Decimal
}

// ProductSales is the summed sale value for one product. Grouping is by
// product id; the name is a display attribute.
type ProductSales struct {
	ProductID int64
	Name      string
	Total     decimal.Decimal
}

// ProductUnits is the summed quantity sold for one product.
type ProductUnits struct {
	ProductID int64
	Name      string
	Units     int64
}

// AnalyticsRepository holds the aggregate reads behind /analytics. Every
// result set orders ties by name then id so output is deterministic.
type AnalyticsRepository interface {
	// SalesByCategory groups sales by the raw categoria string (case-sensitive)
	// and sums valor_total.
	SalesByCategory(ctx context.Context) ([]CategorySales, error)

	// ProductSalesTotals sums valor_total per product, ordered by total
	// descending.
	ProductSalesTotals(ctx context.Context) ([]ProductSales, error)

	// TopSelling sums quantidade per product, ordered descending and truncated
	// to limit rows.
	TopSelling(ctx context.Context, limit int) ([]ProductUnits, error)
}
