package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/isafmcl/Integra-o-com-ERP/internal/domain/model"
	repo "github.com/isafmcl/Integra-o-com-ERP/internal/repository"
)

type SalesUsecase struct {
	saleRepo repo.SaleRepository
}

// DI
func NewSalesUsecase(saleRepo repo.SaleRepository) *SalesUsecase {
	return &SalesUsecase{saleRepo: saleRepo}
}

// GET /vendas input. Every field optional, filters combine with AND.
type ListSalesInput struct {
	Store    string
	Category string
	From     *time.Time
	To       *time.Time
}

func (u *SalesUsecase) ListSales(ctx context.Context, in ListSalesInput) ([]model.Sale, error) {
	if in.From != nil && in.To != nil && in.From.After(*in.To) {
		return nil, NewHTTPError(http.StatusBadRequest, "data_inicio must be <= data_fim")
	}

	sales, err := u.saleRepo.List(ctx, repo.SaleFilter{
		Store:    in.Store,
		Category: in.Category,
		From:     in.From,
		To:       in.To,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return sales, nil
}
