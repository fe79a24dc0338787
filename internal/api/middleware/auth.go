package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skipper-116/devhub-backend/internal/core/ports"
)

// ContextUserID is the echo context key holding the authenticated subject id.
const ContextUserID = "user_id"

// Auth extracts and verifies the bearer token, attaching the subject id to
// the request context. The two failure modes are deliberately distinct:
// a missing or malformed header is 401 and never reaches the token service,
// while a present-but-unverifiable token is 403. Verification is stateless;
// a token stays valid until its embedded expiry regardless of later account
// changes.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: No token provided")
			}

			subjectID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden: Invalid token")
			}

			c.Set(ContextUserID, subjectID)
			return next(c)
		}
	}
}
