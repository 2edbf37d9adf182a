package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/isafmcl/Integra-o-com-ERP/internal/handler"
	"github.com/isafmcl/Integra-o-com-ERP/internal/middleware"
)

// New builds the echo instance with the ambient middleware and every route
// registered.
func New(
	productH *handler.ProductHandler,
	salesH *handler.SalesHandler,
	inventoryH *handler.InventoryHandler,
	analyticsH *handler.AnalyticsHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	// the legacy API shipped with wildcard CORS; kept
	e.Use(echomw.CORS())
	e.Use(middleware.RequestID())

	RegisterRoutes(e, productH, salesH, inventoryH, analyticsH)

	return e
}

func Start(
	addr string,
	productH *handler.ProductHandler,
	salesH *handler.SalesHandler,
	inventoryH *handler.InventoryHandler,
	analyticsH *handler.AnalyticsHandler,
) error {
	e := New(productH, salesH, inventoryH, analyticsH)
	return e.Start(addr)
}
