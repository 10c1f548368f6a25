package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/schnackhq/forum-api/internal/core/domain"
	"github.com/schnackhq/forum-api/internal/core/ports"
)

// ForumService implements thread and post operations.
type ForumService struct {
	threads ports.ThreadRepository
	posts   ports.PostRepository
	log     zerolog.Logger
}

func NewForumService(threads ports.ThreadRepository, posts ports.PostRepository, log zerolog.Logger) *ForumService {
	return &ForumService{threads: threads, posts: posts, log: log}
}

func (s *ForumService) CreateThread(ctx context.Context, title, ownerEmail string) (*domain.Thread, error) {
	thread := &domain.Thread{
		ID:         uuid.NewString(),
		Title:      title,
		OwnerEmail: ownerEmail,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.threads.Create(ctx, thread); err != nil {
		return nil, fmt.Errorf("create thread: %w", err)
	}

	s.log.Info().Str("thread_id", thread.ID).Str("owner", ownerEmail).Msg("thread created")
	return thread, nil
}

func (s *ForumService) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	return s.threads.List(ctx)
}

func (s *ForumService) GetThread(ctx context.Context, id string) (*ports.ThreadDetail, error) {
	thread, err := s.threads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.ListByThread(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return &ports.ThreadDetail{Thread: *thread, Posts: posts}, nil
}

func (s *ForumService) CreatePost(ctx context.Context, threadID, authorEmail, content string) (*domain.Post, error) {
	if _, err := s.threads.FindByID(ctx, threadID); err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:          uuid.NewString(),
		ThreadID:    threadID,
		AuthorEmail: authorEmail,
		Content:     content,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// DeleteThread removes a thread. Only administrators may delete.
func (s *ForumService) DeleteThread(ctx context.Context, id, role string) error {
	if role != domain.RoleAdministrator {
		return domain.ErrForbidden
	}
	if _, err := s.threads.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.threads.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete thread: %w", err)
	}

	s.log.Info().Str("thread_id", id).Msg("thread deleted")
	return nil
}
