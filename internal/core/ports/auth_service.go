package ports

import (
	"context"

	"github.com/schnackhq/forum-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
