package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is an append-only log entry for a mutation.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	UserEmail  string
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// AuditFilter narrows audit log reads.
type AuditFilter struct {
	EntityType *EntityType
	EntityID   *uuid.UUID
	Limit      int
}
