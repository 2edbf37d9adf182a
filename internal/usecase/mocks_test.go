package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/isafmcl/Integra-o-com-ERP/internal/domain/model"
	repo "github.com/isafmcl/Integra-o-com-ERP/internal/repository"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, offset, limit int) ([]model.Product, error) {
	args := m.Called(ctx, offset, limit)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

type SaleRepoMock struct{ mock.Mock }

func (m *SaleRepoMock) List(ctx context.Context, f repo.SaleFilter) ([]model.Sale, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Sale)
	return items, args.Error(1)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) CurrentStock(ctx context.Context) ([]repo.StockRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.StockRow)
	return rows, args.Error(1)
}

func (m *InventoryRepoMock) LowStock(ctx context.Context) ([]repo.LowStockRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.LowStockRow)
	return rows, args.Error(1)
}

type AnalyticsRepoMock struct{ mock.Mock }

func (m *AnalyticsRepoMock) SalesByCategory(ctx context.Context) ([]repo.CategorySales, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.CategorySales)
	return rows, args.Error(1)
}

func (m *AnalyticsRepoMock) ProductSalesTotals(ctx context.Context) ([]repo.ProductSales, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.ProductSales)
	return rows, args.Error(1)
}

func (m *AnalyticsRepoMock) TopSelling(ctx context.Context, limit int) ([]repo.ProductUnits, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]repo.ProductUnits)
	return rows, args.Error(1)
}

func assertErrContains(t *testing.T, err error, substr string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), substr)
}
