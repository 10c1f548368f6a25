package service

import (
	"context"

	"github.com/schnackhq/forum-api/internal/core/domain"
	"github.com/schnackhq/forum-api/internal/core/ports"
)

// CredentialAuthenticator verifies a submitted email/password pair against the
// user store. Unknown email and wrong password surface as distinct errors,
// matching the externally observable behavior of the login endpoint.
type CredentialAuthenticator struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewCredentialAuthenticator(users ports.UserRepository, hasher ports.PasswordHasher) *CredentialAuthenticator {
	return &CredentialAuthenticator{users: users, hasher: hasher}
}

// Authenticate returns the matched account, domain.ErrUserNotFound for an
// unknown email, or domain.ErrInvalidCredentials for a password mismatch.
func (a *CredentialAuthenticator) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
