package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gradefresh/quality-api/internal/core/domain"
)

// ctxUser extracts the user record injected by the Auth middleware. Presence
// proves the middleware ran; a handler reached without it rejects with 401.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
