package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/schnackhq/forum-api/internal/core/domain"
	"github.com/schnackhq/forum-api/internal/pkg/password"
)

func TestCredentialAuthenticator_Authenticate(t *testing.T) {
	hasher := password.NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	repo := newStubUserRepo()
	repo.users["alice@example.com"] = &domain.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	auth := NewCredentialAuthenticator(repo, hasher)

	user, err := auth.Authenticate(context.Background(), "alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestCredentialAuthenticator_WrongPassword(t *testing.T) {
	hasher := password.NewBcryptHasher(bcrypt.MinCost)
	hash, _ := hasher.Hash("correct-horse")

	repo := newStubUserRepo()
	repo.users["alice@example.com"] = &domain.User{
		Email:        "alice@example.com",
		PasswordHash: hash,
	}
	auth := NewCredentialAuthenticator(repo, hasher)

	if _, err := auth.Authenticate(context.Background(), "alice@example.com", "battery-staple"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestCredentialAuthenticator_UnknownEmail(t *testing.T) {
	auth := NewCredentialAuthenticator(newStubUserRepo(), password.NewBcryptHasher(bcrypt.MinCost))

	if _, err := auth.Authenticate(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCredentialAuthenticator_EmptyInput(t *testing.T) {
	auth := NewCredentialAuthenticator(newStubUserRepo(), password.NewBcryptHasher(bcrypt.MinCost))

	if _, err := auth.Authenticate(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
