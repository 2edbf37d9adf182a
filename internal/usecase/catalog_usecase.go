package usecase

import (
	"context"
	"net/http"

	"github.com/isafmcl/Integra-o-com-ERP/internal/domain/model"
	repo "github.com/isafmcl/Integra-o-com-ERP/internal/repository"
)

const (
	DefaultProductLimit = 100
	MaxProductLimit     = 1000
)

type CatalogUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewCatalogUsecase(productRepo repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{productRepo: productRepo}
}

// GET /produtos input
type ListProductsInput struct {
	Skip  int
	Limit int // 0 means DefaultProductLimit
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	if in.Skip < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "skip must be >= 0")
	}
	limit := in.Limit
	if limit == 0 {
		limit = DefaultProductLimit
	}
	if limit < 1 || limit > MaxProductLimit {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	products, err := u.productRepo.List(ctx, in.Skip, limit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}
