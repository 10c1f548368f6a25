package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/schnackhq/forum-api/internal/api/metrics"
	"github.com/schnackhq/forum-api/internal/core/ports"
	"github.com/schnackhq/forum-api/internal/core/token"
)

// Context keys under which the middleware binds the authenticated identity.
const (
	SubjectKey  = "auth_subject"
	UsernameKey = "auth_username"
	RoleKey     = "auth_role"
)

// Auth converts a bearer token into an authenticated identity bound to the
// request context. It never rejects a request: a missing header, a non-Bearer
// scheme, a bad signature, an expired token, an unknown subject, or a stale
// username all pass through unauthenticated, to be handled by a downstream
// authorization checkpoint. The identity is bound at most once per request.
func Auth(codec *token.Codec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return next(c)
			}
			if codec.IsExpired(claims) {
				metrics.TokenValidationsTotal.WithLabelValues("expired").Inc()
				return next(c)
			}

			if c.Get(SubjectKey) != nil {
				return next(c)
			}

			// Re-derive the identity from the store; a token for a deleted or
			// renamed account must not authenticate.
			user, err := users.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("unknown_subject").Inc()
				return next(c)
			}
			if user.Username != claims.Username {
				metrics.TokenValidationsTotal.WithLabelValues("username_mismatch").Inc()
				return next(c)
			}

			metrics.TokenValidationsTotal.WithLabelValues("ok").Inc()
			c.Set(SubjectKey, user.Email)
			c.Set(UsernameKey, user.Username)
			c.Set(RoleKey, user.Role)

			return next(c)
		}
	}
}
