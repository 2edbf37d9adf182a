package usecase

import (
	"context"
	"net/http"
	"time"

	repo "github.com/isafmcl/Integra-o-com-ERP/internal/repository"
)

type InventoryUsecase struct {
	inventoryRepo repo.InventoryRepository
}

// DI
func NewInventoryUsecase(inventoryRepo repo.InventoryRepository) *InventoryUsecase {
	return &InventoryUsecase{inventoryRepo: inventoryRepo}
}

// GET /estoque row
type StockStatusOutput struct {
	ProductID int64     `json:"produto_id"`
	Name      string    `json:"nome"`
	Category  string    `json:"categoria"`
	Quantity  int64     `json:"quantidade"`
	MinStock  int64     `json:"estoque_minimo"`
	UpdatedAt time.Time `json:"data_atualizacao"`
}

// GET /alertas/ruptura row
type LowStockOutput struct {
	ProductID int64  `json:"produto_id"`
	Name      string `json:"nome"`
	Quantity  int64  `json:"quantidade"`
	MinStock  int64  `json:"estoque_minimo"`
}

func (u *InventoryUsecase) CurrentStock(ctx context.Context) ([]StockStatusOutput, error) {
	rows, err := u.inventoryRepo.CurrentStock(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]StockStatusOutput, 0, len(rows))
	for _, r := range rows {
		out = append(out, StockStatusOutput{
			ProductID: r.ProductID,
			Name:      r.Name,
			Category:  r.Category,
			Quantity:  r.Quantity,
			MinStock:  r.MinStock,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return out, nil
}

func (u *InventoryUsecase) LowStock(ctx context.Context) ([]LowStockOutput, error) {
	rows, err := u.inventoryRepo.LowStock(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]LowStockOutput, 0, len(rows))
	for _, r := range rows {
		out = append(out, LowStockOutput{
			ProductID: r.ProductID,
			Name:      r.Name,
			Quantity:  r.Quantity,
			MinStock:  r.MinStock,
		})
	}
	return out, nil
}
