package domain

import "time"

// AuditEntry records a single mutating operation for the audit trail.
type AuditEntry struct {
	Actor     string    // email of the authenticated caller, or "anonymous"
	Action    string    // e.g. "user.create", "product.disable"
	Entity    string    // "user" | "product"
	EntityID  int64
	Timestamp time.Time
}
