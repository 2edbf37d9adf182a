package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/isafmcl/Integra-o-com-ERP/internal/usecase"
)

// /analytics
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUsecase
}

// DI
func NewAnalyticsHandler(uc *usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/analytics/vendas-categoria", h.salesByCategory)
	e.GET("/analytics/curva-abc", h.abcCurve)
	e.GET("/analytics/margem-lucro", h.profitMargin)
	e.GET("/analytics/mais-vendidos", h.topSelling)
}

func (h *AnalyticsHandler) salesByCategory(c echo.Context) error {
	out, err := h.uc.SalesByCategory(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) abcCurve(c echo.Context) error {
	out, err := h.uc.ABCCurve(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) profitMargin(c echo.Context) error {
	out, err := h.uc.ProfitMargin(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) topSelling(c echo.Context) error {
	limit := 0 // usecase applies the default
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.TopSelling(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
