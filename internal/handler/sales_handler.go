package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/isafmcl/Integra-o-com-ERP/internal/usecase"
)

// /vendas
type SalesHandler struct {
	uc *usecase.SalesUsecase
}

// DI
func NewSalesHandler(uc *usecase.SalesUsecase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

func (h *SalesHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/vendas", h.list)
}

// The dashboard sends bare dates, other clients send timestamps.
func parseDateParam(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}

func (h *SalesHandler) list(c echo.Context) error {
	in := usecase.ListSalesInput{
		Store:    c.QueryParam("loja"),
		Category: c.QueryParam("categoria"),
	}

	if v := c.QueryParam("data_inicio"); v != "" {
		t, err := parseDateParam(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid data_inicio"})
		}
		in.From = &t
	}

	if v := c.QueryParam("data_fim"); v != "" {
		t, err := parseDateParam(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid data_fim"})
		}
		in.To = &t
	}

	out, err := h.uc.ListSales(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
