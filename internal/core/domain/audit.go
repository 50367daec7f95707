package domain

import "time"

// AuditAction identifies the mutation recorded by an audit event.
type AuditAction string

const (
	AuditCreated AuditAction = "created"
	AuditUpdated AuditAction = "updated"
	AuditDeleted AuditAction = "deleted"
)

// AuditEvent records a single mutation applied to a managed entity.
// Events are written asynchronously; the mutating request never waits
// on the audit trail.
type AuditEvent struct {
	EntityKind  string      `bson:"entity_kind"` // "user" or "project"
	EntityID    string      `bson:"entity_id"`
	Action      AuditAction `bson:"action"`
	PrincipalID string      `bson:"principal_id,omitempty"`
	Timestamp   time.Time   `bson:"timestamp"`
}
