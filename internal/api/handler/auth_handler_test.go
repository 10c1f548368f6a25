package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/schnackhq/forum-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, email, password string) (string, *domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type stubDispatcher struct {
	events []domain.AuthEvent
}

func (d *stubDispatcher) Enqueue(event domain.AuthEvent) {
	d.events = append(d.events, event)
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (string, *domain.User, error) {
			if username != "alice" || email != "alice@example.com" {
				t.Fatalf("unexpected args: %s %s", username, email)
			}
			return "token123", &domain.User{Username: username, Email: email, Role: domain.RoleAdministrator}, nil
		},
	}
	audit := &stubDispatcher{}
	h := NewAuthHandler(stub, audit)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"long-password"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["role"] != domain.RoleAdministrator {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}

	if len(audit.events) != 1 || audit.events[0].Type != domain.AuthEventRegister {
		t.Fatalf("expected one register audit event, got %+v", audit.events)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrEmailExists
		},
	}
	h := NewAuthHandler(stub, &stubDispatcher{})

	c, _ := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"username":"bob","email":"bob@example.com","password":"long-password"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub, &stubDispatcher{})

	c, _ := newAuthContext(t, http.MethodPost, "/auth/register", "not-json")

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub, &stubDispatcher{})

	// Password below the minimum length.
	c, _ := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"short"}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "secret-pass" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{Username: "alice", Email: email, Role: domain.RoleUser}, nil
		},
	}
	audit := &stubDispatcher{}
	h := NewAuthHandler(stub, audit)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"secret-pass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}

	if len(audit.events) != 1 || audit.events[0].Type != domain.AuthEventLogin {
		t.Fatalf("expected one login audit event, got %+v", audit.events)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	audit := &stubDispatcher{}
	h := NewAuthHandler(stub, audit)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"bad-pass"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(audit.events) != 1 || audit.events[0].Type != domain.AuthEventLoginFailed {
		t.Fatalf("expected one failed-login audit event, got %+v", audit.events)
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrTooManyAttempts
		},
	}
	audit := &stubDispatcher{}
	h := NewAuthHandler(stub, audit)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"whatever-pass"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if len(audit.events) != 1 || audit.events[0].Type != domain.AuthEventLoginThrottle {
		t.Fatalf("expected one throttle audit event, got %+v", audit.events)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubDispatcher{})

	c, rec := newAuthContext(t, http.MethodGet, "/auth/session", "")
	c.Set("auth_subject", "alice@example.com")
	c.Set("auth_username", "alice")
	c.Set("auth_role", domain.RoleAdministrator)

	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Authenticated || resp.Subject != "alice@example.com" || resp.Role != domain.RoleAdministrator {
		t.Fatalf("unexpected session payload: %+v", resp)
	}
}

func TestAuthHandler_Session_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubDispatcher{})

	c, _ := newAuthContext(t, http.MethodGet, "/auth/session", "")

	err := h.Session(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
