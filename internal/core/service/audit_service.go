package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/schnackhq/forum-api/internal/core/domain"
	"github.com/schnackhq/forum-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists dequeued auth events.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}

	s.log.Debug().
		Str("type", string(event.Type)).
		Str("subject", event.Subject).
		Msg("auth event recorded")
	return nil
}
