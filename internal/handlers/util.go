package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is installed as echo's HTTPErrorHandler. *echo.HTTPError keeps
// its status; anything else is a 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	code := "internal_error"
	message := "服务内部错误"
	details := map[string]any{}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		code = errorCode(status)
		message = fmt.Sprint(he.Message)
	} else if err != nil {
		details["error"] = err.Error()
	}

	if c.Request().Method == http.MethodHead {
		logError(c, status, code, message)
		_ = c.NoContent(status)
		return
	}
	_ = writeError(c, status, code, message, details)
}

// errorCode maps a status to a snake_case code, e.g. 405 -> method_not_allowed.
func errorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "error"
	}
	return strings.ReplaceAll(strings.ToLower(text), " ", "_")
}

// writeError writes a unified error response and logs a structured entry.
func writeError(c echo.Context, status int, code, message string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	logError(c, status, code, message)
	return c.JSON(status, map[string]any{
		"error": map[string]any{
			"code":       code,
			"message":    message,
			"details":    details,
			"request_id": requestID(c),
		},
	})
}

func logError(c echo.Context, status int, code, message string) {
	ep := endpoint(c)
	LogStructured("error", map[string]any{
		"request_id": requestID(c),
		"endpoint":   ep,
		"source":     DetectSource(ep),
		"status":     status,
		"result":     "error",
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}

func requestID(c echo.Context) string {
	rid := c.Response().Header().Get(echo.HeaderXRequestID)
	if rid == "" {
		rid = c.Request().Header.Get(echo.HeaderXRequestID)
	}
	return rid
}

func endpoint(c echo.Context) string {
	ep := c.Path()
	if ep == "" {
		ep = c.Request().URL.Path
	}
	return ep
}
