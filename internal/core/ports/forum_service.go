package ports

import (
	"context"

	"github.com/schnackhq/forum-api/internal/core/domain"
)

// ThreadDetail is a thread with its posts, as returned by GetThread.
type ThreadDetail struct {
	Thread domain.Thread
	Posts  []domain.Post
}

type ForumService interface {
	CreateThread(ctx context.Context, title, ownerEmail string) (*domain.Thread, error)
	ListThreads(ctx context.Context) ([]domain.Thread, error)
	GetThread(ctx context.Context, id string) (*ThreadDetail, error)
	CreatePost(ctx context.Context, threadID, authorEmail, content string) (*domain.Post, error)
	DeleteThread(ctx context.Context, id, role string) error
}
