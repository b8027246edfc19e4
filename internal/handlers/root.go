package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GET /
// Redirects to the static sound page. Resolution failures are returned
// as-is and rendered by ErrorHandler.
func (h *Handler) Root(c echo.Context) error {
	u, err := h.assets.URL(SoundPage)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, u)
}
