package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mstrelkov/jewelstock/internal/logging"
	"github.com/mstrelkov/jewelstock/internal/search"
	"github.com/mstrelkov/jewelstock/internal/util"
)

type SearchHandler struct {
	Client *search.Client
}

func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "inventory.search")

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, items, err := h.Client.Search(ctx, q, from, limit)
	if err != nil {
		l.Error("search_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "items": items})
}
