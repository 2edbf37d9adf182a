package usecase

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	repo "github.com/isafmcl/Integra-o-com-ERP/internal/repository"
)

const (
	DefaultTopSellingLimit = 10
	MaxTopSellingLimit     = 1000
)

var oneHundred = decimal.NewFromInt(100)

type AnalyticsUsecase struct {
	productRepo   repo.ProductRepository
	analyticsRepo repo.AnalyticsRepository
}

// DI
func NewAnalyticsUsecase(productRepo repo.ProductRepository, analyticsRepo repo.AnalyticsRepository) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		productRepo:   productRepo,
		analyticsRepo: analyticsRepo,
	}
}

// GET /analytics/vendas-categoria row
type CategorySalesOutput struct {
	Category string          `json:"categoria"`
	Total    decimal.Decimal `json:"total_vendas"`
}

// GET /analytics/curva-abc row. CumulativePercent is computed here so the
// dashboard only renders it. It is null when the grand total is zero.
type ABCCurveOutput struct {
	Name              string          `json:"produto"`
	Total             decimal.Decimal `json:"total_vendas"`
	CumulativePercent *float64        `json:"percentual_acumulado"`
}

// GET /analytics/margem-lucro row. Margin is null when preco is zero: the row
// is kept, the request never fails on it.
type ProfitMarginOutput struct {
	Name   string   `json:"produto"`
	Margin *float64 `json:"margem"`
}

// GET /analytics/mais-vendidos row
type TopSellingOutput struct {
	Name  string `json:"produto"`
	Units int64  `json:"total_vendido"`
}

func (u *AnalyticsUsecase) SalesByCategory(ctx context.Context) ([]CategorySalesOutput, error) {
	rows, err := u.analyticsRepo.SalesByCategory(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]CategorySalesOutput, 0, len(rows))
	for _, r := range rows {
		out = append(out, CategorySalesOutput{Category: r.Category, Total: r.Total})
	}
	return out, nil
}

// ABCCurve returns products ranked by summed sale value, descending, with the
// running share of the grand total.
func (u *AnalyticsUsecase) ABCCurve(ctx context.Context) ([]ABCCurveOutput, error) {
	rows, err := u.analyticsRepo.ProductSalesTotals(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	grand := decimal.Zero
	for _, r := range rows {
		grand = grand.Add(r.Total)
	}

	out := make([]ABCCurveOutput, 0, len(rows))
	running := decimal.Zero
	for _, r := range rows {
		running = running.Add(r.Total)

		var pct *float64
		if !grand.IsZero() {
			v, _ := running.Div(grand).Mul(oneHundred).Float64()
			pct = &v
		}

		out = append(out, ABCCurveOutput{
			Name:              r.Name,
			Total:             r.Total,
			CumulativePercent: pct,
		})
	}
	return out, nil
}

// ProfitMargin yields (preco - custo) / preco * 100 for every product. A
// zero-price product keeps its row with a null margin.
func (u *AnalyticsUsecase) ProfitMargin(ctx context.Context) ([]ProfitMarginOutput, error) {
	products, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]ProfitMarginOutput, 0, len(products))
	for _, p := range products {
		row := ProfitMarginOutput{Name: p.Name}
		if !p.Price.IsZero() {
			v, _ := p.Price.Sub(p.Cost).Div(p.Price).Mul(oneHundred).Float64()
			row.Margin = &v
		}
		out = append(out, row)
	}
	return out, nil
}

func (u *AnalyticsUsecase) TopSelling(ctx context.Context, limit int) ([]TopSellingOutput, error) {
	if limit == 0 {
		limit = DefaultTopSellingLimit
	}
	if limit < 1 || limit > MaxTopSellingLimit {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	rows, err := u.analyticsRepo.TopSelling(ctx, limit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]TopSellingOutput, 0, len(rows))
	for _, r := range rows {
		out = append(out, TopSellingOutput{Name: r.Name, Units: r.Units})
	}
	return out, nil
}
