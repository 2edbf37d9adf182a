package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/isafmcl/Integra-o-com-ERP/internal/domain/model"
	repo "github.com/isafmcl/Integra-o-com-ERP/internal/repository"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// CurrentStock returns one row per estoque record joined to its product.
func (r *InventoryGormRepository) CurrentStock(ctx context.Context) ([]repo.StockRow, error) {
	rows := make([]repo.StockRow, 0)
	err := r.db.WithContext(ctx).
		Model(&model.Inventory{}).
		Select("produtos.id AS product_id, produtos.nome AS name, produtos.categoria AS category, produtos.estoque_minimo AS min_stock, estoque.quantidade AS quantity, estoque.data_atualizacao AS updated_at").
		Joins("JOIN produtos ON produtos.id = estoque.produto_id").
		Order("estoque.id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LowStock compares each estoque record with its product's minimum. Products
// with no estoque record are absent (inner join).
func (r *InventoryGormRepository) LowStock(ctx context.Context) ([]repo.LowStockRow, error) {
	rows := make([]repo.LowStockRow, 0)
	err := r.db.WithContext(ctx).
		Model(&model.Inventory{}).
		Select("produtos.id AS product_id, produtos.nome AS name, produtos.estoque_minimo AS min_stock, estoque.quantidade AS quantity").
		Joins("JOIN produtos ON produtos.id = estoque.produto_id").
		Where("estoque.quantidade < produtos.estoque_minimo").
		Order("produtos.nome asc").
		Order("produtos.id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
