package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skipper-116/devhub-backend/internal/api/middleware"
)

// principalID extracts the subject id attached by the Auth middleware. Its
// absence means the middleware did not run on this route, which is a wiring
// mistake; fail exactly like a missing token rather than leaking through.
func principalID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: No token provided")
	}
	return id, nil
}
