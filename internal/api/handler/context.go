package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saberviver/mentorship-api/internal/core/domain"
)

// ctxIdentity extracts the session identity injected by the Auth middleware
// and performs a fast-fail check before any service call: both values must be
// present, their presence proves the guard ran.
func ctxIdentity(c echo.Context) (sessionID string, user *domain.User, err error) {
	sessionID, _ = c.Get("session_id").(string)
	user, _ = c.Get("user").(*domain.User)
	if sessionID == "" || user == nil {
		return "", nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return sessionID, user, nil
}

// bearerToken reads the raw token for handlers that resolve the session
// themselves (logout, me) instead of sitting behind the guard.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
