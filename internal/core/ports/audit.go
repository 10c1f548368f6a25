package ports

import (
	"context"

	"github.com/schnackhq/forum-api/internal/core/domain"
)

// AuditDispatcher accepts auth events for asynchronous persistence.
// Enqueue must not block the authentication path.
type AuditDispatcher interface {
	Enqueue(event domain.AuthEvent)
}

// AuditRepository defines persistence for the auth audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
	ListBySubject(ctx context.Context, subject string, limit int64) ([]domain.AuthEvent, error)
}

// AuditService processes a single dequeued auth event.
type AuditService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
}
