package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/exam-api/internal/api/handler"
	"github.com/99minutos/exam-api/internal/core/ports"
	"github.com/99minutos/exam-api/internal/infrastructure/token"
)

const (
	msgMissingHeader = "Missing Authorization Header"
	msgBadHeader     = "Bad Authorization header. Expected 'Authorization: Bearer <JWT>'"
	msgTokenExpired  = "Token has expired"
	msgInvalidToken  = "Invalid token"
)

// Auth validates the bearer token and stores the username in the context.
// It runs before the handler reads the body, so protected routes answer 401
// regardless of payload.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, msgMissingHeader)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, msgBadHeader)
			}

			username, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				if errors.Is(err, token.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, msgTokenExpired)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
			}

			c.Set(handler.UsernameKey, username)
			return next(c)
		}
	}
}
