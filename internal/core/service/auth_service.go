package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/schnackhq/forum-api/internal/core/domain"
	"github.com/schnackhq/forum-api/internal/core/ports"
	"github.com/schnackhq/forum-api/internal/core/token"
)

// LoginLimiter abstracts the failed-attempt throttle store (Redis).
type LoginLimiter interface {
	IsLocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration and login on top of the credential
// authenticator and the token codec.
type AuthService struct {
	users         ports.UserRepository
	hasher        ports.PasswordHasher
	authenticator *CredentialAuthenticator
	codec         *token.Codec
	tokenTTL      time.Duration
	limiter       LoginLimiter
	log           zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	codec *token.Codec,
	tokenTTL time.Duration,
	limiter LoginLimiter,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:         users,
		hasher:        hasher,
		authenticator: NewCredentialAuthenticator(users, hasher),
		codec:         codec,
		tokenTTL:      tokenTTL,
		limiter:       limiter,
		log:           log,
	}
}

// Login authenticates the credentials and mints a bearer token whose subject
// is the account email and whose role is the account role at issuance time.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if s.limiter != nil {
		locked, err := s.limiter.IsLocked(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("login throttle check failed, proceeding")
		} else if locked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		if s.limiter != nil && (errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound)) {
			if recErr := s.limiter.RecordFailure(ctx, email); recErr != nil {
				s.log.Warn().Err(recErr).Str("email", email).Msg("failed to record login failure")
			}
		}
		return "", nil, err
	}

	signed, err := s.codec.Issue(user.Email, user.Username, user.Role, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	if s.limiter != nil {
		if resetErr := s.limiter.Reset(ctx, email); resetErr != nil {
			s.log.Warn().Err(resetErr).Str("email", email).Msg("failed to reset login throttle")
		}
	}

	s.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("login succeeded")
	return signed, user, nil
}

// Register creates a new account and mints a token for it. The very first
// account in the store is granted the administrator role; every later account
// gets the user role. The count check and the insert are not atomic: two
// racing first registrations can both observe an empty store; the unique
// email index still prevents duplicate accounts.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	if username == "" || email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("count users: %w", err)
	}
	role := domain.RoleUser
	if count == 0 {
		role = domain.RoleAdministrator
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", nil, err
	}

	signed, err := s.codec.Issue(created.Email, created.Username, created.Role, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("email", created.Email).Str("role", created.Role).Msg("account registered")
	return signed, created, nil
}
