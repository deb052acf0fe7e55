package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gradefresh/quality-api/internal/core/domain"
	"github.com/gradefresh/quality-api/internal/core/ports"
	"github.com/gradefresh/quality-api/internal/core/service"
)

// Auth validates the bearer token and resolves its subject against the user
// store, injecting the full user record into the request context. The store
// lookup runs on every request: tokens carry no role, so a role change (or a
// deleted account) takes effect immediately.
func Auth(tokens *service.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, err := tokens.Validate(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidID) {
					// Valid token for a subject that no longer exists.
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown subject")
				}
				return err
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
