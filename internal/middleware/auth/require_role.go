package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mstrelkov/jewelstock/internal/authz"
)

// Require guards a route with the static policy table. It expects
// RequireAuth to have run first.
func Require(resource authz.Resource, action authz.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := RoleFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
			}
			if !authz.Allowed(role, resource, action) {
				return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
			}
			return next(c)
		}
	}
}
