package router

import (
	"net/http"

	"github.com/deppfellow/go-hanoi/internal/handler"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerSystemRoutes registers endpoints that are not part of the puzzle API.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Used by Kubernetes and uptime monitors.
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// openapi.json and anything the docs page needs.
	r.StaticFS("/static", handler.StaticFS())

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	r.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/docs")
	})
}
