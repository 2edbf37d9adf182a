package repository_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/isafmcl/Integra-o-com-ERP/internal/domain/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := db.AutoMigrate(&model.Product{}, &model.Inventory{}, &model.Sale{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id int64, name, category string, price, cost float64, minStock int64) {
	t.Helper()

	p := model.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    decimal.NewFromFloat(price),
		Cost:     decimal.NewFromFloat(cost),
		MinStock: minStock,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func seedInventory(t *testing.T, db *gorm.DB, productID, quantity int64) {
	t.Helper()

	inv := model.Inventory{
		ProductID: productID,
		Quantity:  quantity,
		UpdatedAt: time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("seed inventory: %v", err)
	}
}

func seedSale(t *testing.T, db *gorm.DB, productID int64, store string, quantity int64, total float64, soldAt time.Time) {
	t.Helper()

	s := model.Sale{
		ProductID:  productID,
		Store:      store,
		Quantity:   quantity,
		TotalValue: decimal.NewFromFloat(total),
		SoldAt:     soldAt,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed sale: %v", err)
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
