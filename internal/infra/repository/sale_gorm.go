package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/isafmcl/Integra-o-com-ERP/internal/domain/model"
	repo "github.com/isafmcl/Integra-o-com-ERP/internal/repository"
)

type SaleGormRepository struct {
	db *gorm.DB
}

// DI
func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

// List returns sales matching every supplied filter. The categoria filter
// applies to the joined product. No implicit limit.
func (r *SaleGormRepository) List(ctx context.Context, f repo.SaleFilter) ([]model.Sale, error) {
	sales := make([]model.Sale, 0)

	tx := r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Select("vendas.*").
		Joins("JOIN produtos ON produtos.id = vendas.produto_id")

	if f.Store != "" {
		tx = tx.Where("vendas.loja = ?", f.Store)
	}
	if f.Category != "" {
		tx = tx.Where("produtos.categoria = ?", f.Category)
	}

	// bounds are inclusive; a nil bound leaves that side open
	if f.From != nil {
		tx = tx.Where("vendas.data_venda >= ?", *f.From)
	}
	if f.To != nil {
		tx = tx.Where("vendas.data_venda <= ?", *f.To)
	}

	if err := tx.Order("vendas.id asc").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
