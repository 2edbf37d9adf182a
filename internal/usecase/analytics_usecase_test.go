package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/isafmcl/Integra-o-com-ERP/internal/domain/model"
	repo "github.com/isafmcl/Integra-o-com-ERP/internal/repository"
	"github.com/isafmcl/Integra-o-com-ERP/internal/usecase"
)

func newAnalyticsUC(pRepo *ProductRepoMock, aRepo *AnalyticsRepoMock) *usecase.AnalyticsUsecase {
	return usecase.NewAnalyticsUsecase(pRepo, aRepo)
}

func TestAnalyticsUsecase_SalesByCategory(t *testing.T) {
	aRepo := new(AnalyticsRepoMock)
	uc := newAnalyticsUC(new(ProductRepoMock), aRepo)

	aRepo.On("SalesByCategory", mock.Anything).Return([]repo.CategorySales{
		{Category: "Tools", Total: decimal.NewFromInt(20)},
	}, nil)

	out, err := uc.SalesByCategory(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out))
	assert.Equal(t, "Tools", out[0].Category)
	assert.True(t, out[0].Total.Equal(decimal.NewFromInt(20)))
}

func TestAnalyticsUsecase_ABCCurve_CumulativePercent(t *testing.T) {
	aRepo := new(AnalyticsRepoMock)
	uc := newAnalyticsUC(new(ProductRepoMock), aRepo)

	aRepo.On("ProductSalesTotals", mock.Anything).Return([]repo.ProductSales{
		{ProductID: 1, Name: "A", Total: decimal.NewFromInt(60)},
		{ProductID: 2, Name: "B", Total: decimal.NewFromInt(30)},
		{ProductID: 3, Name: "C", Total: decimal.NewFromInt(10)},
	}, nil)

	out, err := uc.ABCCurve(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, len(out))

	// ranking stays non-increasing
	for i := 1; i < len(out); i++ {
		assert.True(t, out[i-1].Total.GreaterThanOrEqual(out[i].Total))
	}

	assert.NotNil(t, out[0].CumulativePercent)
	assert.InDelta(t, 60.0, *out[0].CumulativePercent, 1e-9)
	assert.InDelta(t, 90.0, *out[1].CumulativePercent, 1e-9)
	assert.InDelta(t, 100.0, *out[2].CumulativePercent, 1e-9)
}

func TestAnalyticsUsecase_ABCCurve_ZeroGrandTotal(t *testing.T) {
	aRepo := new(AnalyticsRepoMock)
	uc := newAnalyticsUC(new(ProductRepoMock), aRepo)

	aRepo.On("ProductSalesTotals", mock.Anything).Return([]repo.ProductSales{
		{ProductID: 1, Name: "A", Total: decimal.Zero},
	}, nil)

	out, err := uc.ABCCurve(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out))
	assert.Nil(t, out[0].CumulativePercent)
}

func TestAnalyticsUsecase_ProfitMargin(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := newAnalyticsUC(pRepo, new(AnalyticsRepoMock))

	pRepo.On("ListAll", mock.Anything).Return([]model.Product{
		{ID: 1, Name: "Widget", Price: decimal.NewFromInt(10), Cost: decimal.NewFromInt(6)},
	}, nil)

	out, err := uc.ProfitMargin(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out))
	assert.Equal(t, "Widget", out[0].Name)
	assert.NotNil(t, out[0].Margin)
	assert.InDelta(t, 40.0, *out[0].Margin, 1e-9)
}

// A zero-price product must not fail the request: its row stays, margem null.
func TestAnalyticsUsecase_ProfitMargin_ZeroPrice(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := newAnalyticsUC(pRepo, new(AnalyticsRepoMock))

	pRepo.On("ListAll", mock.Anything).Return([]model.Product{
		{ID: 1, Name: "Freebie", Price: decimal.Zero, Cost: decimal.NewFromInt(2)},
		{ID: 2, Name: "Widget", Price: decimal.NewFromInt(10), Cost: decimal.NewFromInt(6)},
	}, nil)

	out, err := uc.ProfitMargin(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out))
	assert.Nil(t, out[0].Margin)
	assert.NotNil(t, out[1].Margin)
	assert.InDelta(t, 40.0, *out[1].Margin, 1e-9)
}

func TestAnalyticsUsecase_TopSelling_InvalidLimit(t *testing.T) {
	uc := newAnalyticsUC(new(ProductRepoMock), new(AnalyticsRepoMock))

	_, err := uc.TopSelling(context.Background(), -1)
	assertErrContains(t, err, "invalid limit")

	_, err = uc.TopSelling(context.Background(), usecase.MaxTopSellingLimit+1)
	assertErrContains(t, err, "invalid limit")
}

func TestAnalyticsUsecase_TopSelling_DefaultLimit(t *testing.T) {
	aRepo := new(AnalyticsRepoMock)
	uc := newAnalyticsUC(new(ProductRepoMock), aRepo)

	aRepo.On("TopSelling", mock.Anything, usecase.DefaultTopSellingLimit).
		Return([]repo.ProductUnits{{ProductID: 1, Name: "Widget", Units: 2}}, nil)

	out, err := uc.TopSelling(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out))
	assert.Equal(t, "Widget", out[0].Name)
	assert.Equal(t, int64(2), out[0].Units)

	aRepo.AssertExpectations(t)
}
