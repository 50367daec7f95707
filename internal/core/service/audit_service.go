package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/teampulse/admin-console/internal/core/domain"
	"github.com/teampulse/admin-console/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that writes events to the audit trail.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit event.
func (s *auditService) Process(ctx context.Context, e domain.AuditEvent) error {
	if e.EntityID == "" || e.Action == "" {
		return fmt.Errorf("process audit event: %w", domain.ErrInvalidInput)
	}

	if err := s.repo.InsertEvent(ctx, &e); err != nil {
		return fmt.Errorf("process audit event: %w", err)
	}

	s.log.Debug().
		Str("entity_kind", e.EntityKind).
		Str("entity_id", e.EntityID).
		Str("action", string(e.Action)).
		Msg("audit event recorded")

	return nil
}
