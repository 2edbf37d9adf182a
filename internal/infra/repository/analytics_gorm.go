package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/isafmcl/Integra-o-com-ERP/internal/domain/model"
	repo "github.com/isafmcl/Integra-o-com-ERP/internal/repository"
)

type AnalyticsGormRepository struct {
	db *gorm.DB
}

// DI
func NewAnalyticsGormRepository(db *gorm.DB) *AnalyticsGormRepository {
	return &AnalyticsGormRepository{db: db}
}

// SalesByCategory sums valor_total grouped by the raw categoria string.
// Categories with no sales do not appear.
func (r *AnalyticsGormRepository) SalesByCategory(ctx context.Context) ([]repo.CategorySales, error) {
	rows := make([]repo.CategorySales, 0)
	err := r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Select("produtos.categoria AS category, SUM(vendas.valor_total) AS total").
		Joins("JOIN produtos ON produtos.id = vendas.produto_id").
		Group("produtos.categoria").
		Order("produtos.categoria asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ProductSalesTotals sums valor_total per product, ranked descending. Grouping
// is by product id; ties order by name, then id.
func (r *AnalyticsGormRepository) ProductSalesTotals(ctx context.Context) ([]repo.ProductSales, error) {
	rows := make([]repo.ProductSales, 0)
	err := r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Select("produtos.id AS product_id, produtos.nome AS name, SUM(vendas.valor_total) AS total").
		Joins("JOIN produtos ON produtos.id = vendas.produto_id").
		Group("produtos.id, produtos.nome").
		Order("total desc").
		Order("produtos.nome asc").
		Order("produtos.id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TopSelling sums quantidade per product, ranked descending and truncated to
// limit rows.
func (r *AnalyticsGormRepository) TopSelling(ctx context.Context, limit int) ([]repo.ProductUnits, error) {
	rows := make([]repo.ProductUnits, 0)
	err := r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Select("produtos.id AS product_id, produtos.nome AS name, SUM(vendas.quantidade) AS units").
		Joins("JOIN produtos ON produtos.id = vendas.produto_id").
		Group("produtos.id, produtos.nome").
		Order("units desc").
		Order("produtos.nome asc").
		Order("produtos.id asc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
