package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"faucet/backend/internal/handler"
)

// NewRouter wires the API routes, the Farcaster surface and the static SPA
// fallback onto a configured echo instance.
func NewRouter(
	networkHandler *handler.NetworkHandler,
	scoreHandler *handler.ScoreHandler,
	rateLimitHandler *handler.RateLimitHandler,
	claimHandler *handler.ClaimHandler,
	frameHandler *handler.FrameHandler,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(RequestLoggerMiddleware())

	api := e.Group("/api")
	networkHandler.RegisterRoutes(api)
	scoreHandler.RegisterRoutes(api)
	rateLimitHandler.RegisterRoutes(api)
	claimHandler.RegisterRoutes(api)

	frameHandler.RegisterRoutes(e)
	registerStatic(e, staticDir)

	return e
}
