package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/isafmcl/Integra-o-com-ERP/internal/config"
	"github.com/isafmcl/Integra-o-com-ERP/internal/domain/model"
	"github.com/isafmcl/Integra-o-com-ERP/internal/handler"
	"github.com/isafmcl/Integra-o-com-ERP/internal/infra/db"
	infraRepo "github.com/isafmcl/Integra-o-com-ERP/internal/infra/repository"
	"github.com/isafmcl/Integra-o-com-ERP/internal/server"
	"github.com/isafmcl/Integra-o-com-ERP/internal/usecase"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// money fields serialize as JSON numbers, the dashboard charts them
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	// schema provisioning only; rows are written by external ingestion
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Inventory{},
		&model.Sale{},
	); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	productRepo := infraRepo.NewProductGormRepository(gormDB)
	saleRepo := infraRepo.NewSaleGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	analyticsRepo := infraRepo.NewAnalyticsGormRepository(gormDB)

	catalogUC := usecase.NewCatalogUsecase(productRepo)
	salesUC := usecase.NewSalesUsecase(saleRepo)
	inventoryUC := usecase.NewInventoryUsecase(inventoryRepo)
	analyticsUC := usecase.NewAnalyticsUsecase(productRepo, analyticsRepo)

	productH := handler.NewProductHandler(catalogUC)
	salesH := handler.NewSalesHandler(salesUC)
	inventoryH := handler.NewInventoryHandler(inventoryUC)
	analyticsH := handler.NewAnalyticsHandler(analyticsUC)

	addr := ":" + cfg.Port
	if err := server.Start(addr, productH, salesH, inventoryH, analyticsH); err != nil {
		log.Fatalf("server: %v", err)
	}
}
