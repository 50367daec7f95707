package ports

import (
	"context"

	"github.com/teampulse/admin-console/internal/core/domain"
)

// AuditRepository persists the audit trail.
type AuditRepository interface {
	InsertEvent(ctx context.Context, e *domain.AuditEvent) error
}

// AuditService processes a single audit event end to end.
type AuditService interface {
	Process(ctx context.Context, e domain.AuditEvent) error
}

// AuditSink accepts audit events for asynchronous processing. Services
// record through this interface; the queue dispatcher implements it.
type AuditSink interface {
	Enqueue(e domain.AuditEvent)
}
