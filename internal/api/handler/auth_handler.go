package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/schnackhq/forum-api/internal/api/metrics"
	"github.com/schnackhq/forum-api/internal/core/domain"
	"github.com/schnackhq/forum-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	audit       ports.AuditDispatcher
}

func NewAuthHandler(authService ports.AuthService, audit ports.AuditDispatcher) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

// Register creates a new account and returns a bearer token for it.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role).Inc()
	h.recordAudit(domain.AuthEventRegister, user.Email, "")

	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Login authenticates credentials and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		switch {
		case errors.Is(err, domain.ErrTooManyAttempts):
			h.recordAudit(domain.AuthEventLoginThrottle, req.Email, err.Error())
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
			h.recordAudit(domain.AuthEventLoginFailed, req.Email, err.Error())
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.recordAudit(domain.AuthEventLogin, user.Email, "")

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Session reports the identity bound to the current request. Reaching this
// handler at all proves the bearer token was accepted.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	subject, username, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		Subject:       subject,
		Username:      username,
		Role:          role,
	})
}

func (h *AuthHandler) recordAudit(eventType domain.AuthEventType, subject, reason string) {
	if h.audit == nil {
		return
	}
	metrics.AuditEventsTotal.WithLabelValues(string(eventType)).Inc()
	h.audit.Enqueue(domain.AuthEvent{
		Type:      eventType,
		Subject:   subject,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "error"
	}
}
