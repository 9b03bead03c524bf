package ports

import (
	"context"
	"time"
)

// AuditEntryInput is the DTO handed from services to the audit pipeline.
type AuditEntryInput struct {
	Actor     string
	Action    string
	Entity    string
	EntityID  int64
	Timestamp time.Time
}

// AuditService processes audit entries dequeued by the dispatcher.
type AuditService interface {
	Process(ctx context.Context, entry AuditEntryInput) error
}

// AuditSink decouples services from the queueing mechanics; the dispatcher
// implements it, and a no-op sink stands in where auditing is disabled.
type AuditSink interface {
	Enqueue(entry AuditEntryInput)
}
