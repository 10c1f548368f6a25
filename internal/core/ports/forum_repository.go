package ports

import (
	"context"

	"github.com/schnackhq/forum-api/internal/core/domain"
)

// ThreadRepository defines persistence for threads.
type ThreadRepository interface {
	Create(ctx context.Context, thread *domain.Thread) error
	FindByID(ctx context.Context, id string) (*domain.Thread, error)
	List(ctx context.Context) ([]domain.Thread, error)
	Delete(ctx context.Context, id string) error
}

// PostRepository defines persistence for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	ListByThread(ctx context.Context, threadID string) ([]domain.Post, error)
}
