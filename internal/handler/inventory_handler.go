package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/isafmcl/Integra-o-com-ERP/internal/usecase"
)

// /estoque and /alertas/ruptura
type InventoryHandler struct {
	uc *usecase.InventoryUsecase
}

// DI
func NewInventoryHandler(uc *usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func (h *InventoryHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/estoque", h.currentStock)
	e.GET("/alertas/ruptura", h.lowStock)
}

func (h *InventoryHandler) currentStock(c echo.Context) error {
	out, err := h.uc.CurrentStock(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InventoryHandler) lowStock(c echo.Context) error {
	out, err := h.uc.LowStock(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
