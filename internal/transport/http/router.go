package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/mstrelkov/jewelstock/internal/authz"
	"github.com/mstrelkov/jewelstock/internal/handlers"
	authmw "github.com/mstrelkov/jewelstock/internal/middleware/auth"
)

type Deps struct {
	DB               *gorm.DB
	JWTSecret        []byte
	AuthHandler      *handlers.AuthHandler
	PriceHandler     *handlers.PriceHandler
	InventoryHandler *handlers.InventoryHandler
	SearchHandler    *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/auth/register", d.AuthHandler.Register)
	v1.POST("/auth/login", d.AuthHandler.Login)

	// price reads are public; everything else carries a bearer token
	v1.GET("/metal-prices", d.PriceHandler.GetPrices)

	requireAuth := authmw.RequireAuth(d.JWTSecret)

	v1.GET("/auth/me", d.AuthHandler.Me, requireAuth)

	v1.PUT("/metal-prices", d.PriceHandler.UpdatePrices,
		requireAuth, authmw.Require(authz.ResourcePrices, authz.ActionWrite))

	inv := v1.Group("/inventory", requireAuth)

	inv.GET("", d.InventoryHandler.GetItems,
		authmw.Require(authz.ResourceInventory, authz.ActionRead))
	if d.SearchHandler != nil {
		inv.GET("/search", d.SearchHandler.Search,
			authmw.Require(authz.ResourceInventory, authz.ActionRead))
	}
	inv.GET("/:id", d.InventoryHandler.GetItem,
		authmw.Require(authz.ResourceInventory, authz.ActionRead))

	inv.POST("", d.InventoryHandler.CreateItem,
		authmw.Require(authz.ResourceInventory, authz.ActionWrite))
	inv.PUT("/:id", d.InventoryHandler.UpdateItem,
		authmw.Require(authz.ResourceInventory, authz.ActionWrite))
	inv.DELETE("/:id", d.InventoryHandler.DeleteItem,
		authmw.Require(authz.ResourceInventory, authz.ActionWrite))
}
