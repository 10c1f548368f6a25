package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/schnackhq/forum-api/internal/api/middleware"
)

// ctxIdentity extracts the identity bound by the auth middleware and performs
// a fast-fail check before any service call: a non-empty subject proves the
// middleware authenticated the request.
func ctxIdentity(c echo.Context) (subject, username, role string, err error) {
	subject, _ = c.Get(middleware.SubjectKey).(string)
	if subject == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	username, _ = c.Get(middleware.UsernameKey).(string)
	role, _ = c.Get(middleware.RoleKey).(string)
	return subject, username, role, nil
}
