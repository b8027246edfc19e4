package handlers

import (
	"github.com/labstack/echo/v4"

	"soundpage/internal/static"
	"soundpage/pkg/config"
)

// SoundPage is the static asset the root redirects to.
const SoundPage = "sound.html"

// RegisterRoutes installs middleware, the error handler and the routes.
// The static route is mounted by assets; "/" is the only application route.
func RegisterRoutes(e *echo.Echo, cfg config.Config, assets *static.Assets) {
	e.HTTPErrorHandler = ErrorHandler
	e.Use(Recover())
	e.Use(RequestID())
	if cfg.LogRequests {
		e.Use(StructuredLogger())
	}

	assets.Mount(e)

	h := &Handler{cfg: cfg, assets: assets}

	// Root redirect to the sound page
	e.GET("/", h.Root)
}

type Handler struct {
	cfg    config.Config
	assets static.Resolver
}
