package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mstrelkov/jewelstock/internal/logging"
	authmw "github.com/mstrelkov/jewelstock/internal/middleware/auth"
	"github.com/mstrelkov/jewelstock/internal/service"
	"github.com/mstrelkov/jewelstock/internal/transport"
)

type PriceHandler struct {
	Svc *service.PriceService
}

func (h *PriceHandler) GetPrices(c echo.Context) error {
	ctx := c.Request().Context()

	price, err := h.Svc.GetCurrent(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("get_prices_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot fetch prices")
	}

	return c.JSON(http.StatusOK, price)
}

func (h *PriceHandler) UpdatePrices(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "prices.update")

	userID, ok := authmw.UserIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
	}

	var req transport.UpdatePricesRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_prices_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	price, err := h.Svc.SetCurrent(ctx, req.GoldPrice, req.SilverPrice, req.PlatinumPrice, userID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			l.Warn("update_prices_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("update_prices_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update prices")
	}

	return c.JSON(http.StatusOK, price)
}
