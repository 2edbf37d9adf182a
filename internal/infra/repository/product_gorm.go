package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/isafmcl/Integra-o-com-ERP/internal/domain/model"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// List returns a page of the catalog ordered by id. An offset past the end
// yields an empty slice, not an error.
func (r *ProductGormRepository) List(ctx context.Context, offset, limit int) ([]model.Product, error) {
	products := make([]model.Product, 0)
	err := r.db.WithContext(ctx).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductGormRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0)
	err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
