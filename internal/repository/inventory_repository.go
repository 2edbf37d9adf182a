package repository

import (
	"context"
	"time"
)

// StockRow is one estoque record joined to its product.
type StockRow struct {
	ProductID int64
	Name      string
	Category  string
	MinStock  int64
	Quantity  int64
	UpdatedAt time.Time
}

// LowStockRow pairs a product with the on-hand quantity that fell below its
// minimum.
type LowStockRow struct {
	ProductID int64
	Name      string
	MinStock  int64
	Quantity  int64
}

type InventoryRepository interface {
	// CurrentStock returns one row per estoque record, joined to its product.
	CurrentStock(ctx context.Context) ([]StockRow, error)

	// LowStock returns the pairs where quantidade < estoque_minimo. Inner-join
	// semantics: a product with no estoque record never appears.
	LowStock(ctx context.Context) ([]LowStockRow, error)
}
