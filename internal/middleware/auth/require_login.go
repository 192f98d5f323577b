package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mstrelkov/jewelstock/internal/models"
	"github.com/mstrelkov/jewelstock/internal/tokens"
)

const (
	claimsKey = "claims"
	userIDKey = "userID"
	roleKey   = "role"
)

// RequireAuth parses the Authorization bearer token and loads its claims
// into the echo context. Verification is stateless: no database lookup.
func RequireAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.AccessClaimsFromToken(parts[1], secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			userID, err := claims.UserID()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}

			c.Set(claimsKey, claims)
			c.Set(userIDKey, userID)
			c.Set(roleKey, claims.Role)
			return next(c)
		}
	}
}

func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(userIDKey).(uuid.UUID)
	return id, ok
}

func RoleFromContext(c echo.Context) (models.Role, bool) {
	role, ok := c.Get(roleKey).(models.Role)
	return role, ok
}
