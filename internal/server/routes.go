package server

import (
	"github.com/labstack/echo/v4"

	"github.com/isafmcl/Integra-o-com-ERP/internal/handler"
)

func RegisterRoutes(
	e *echo.Echo,
	productH *handler.ProductHandler,
	salesH *handler.SalesHandler,
	inventoryH *handler.InventoryHandler,
	analyticsH *handler.AnalyticsHandler,
) {
	productH.RegisterRoutes(e)
	salesH.RegisterRoutes(e)
	inventoryH.RegisterRoutes(e)
	analyticsH.RegisterRoutes(e)
}
