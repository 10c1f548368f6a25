package ports

import (
	"context"

	"github.com/schnackhq/forum-api/internal/core/domain"
)

// UserRepository defines the persistence contract for forum accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
