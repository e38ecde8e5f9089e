// Package audit records and reads the append-only audit log.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/metrics"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, error)
}

// Recorder writes audit records on behalf of other services.
type Recorder struct {
	repo auditRepo
	log  *slog.Logger
}

// NewRecorder creates a new audit recorder.
func NewRecorder(log *slog.Logger, repo auditRepo) *Recorder {
	return &Recorder{
		repo: repo,
		log:  log.With("service", "audit"),
	}
}

// Record appends record to the audit log. It runs after the mutation has
// been persisted and never fails it: a write error is logged and counted.
// The write is detached from ctx cancellation so a client disconnect does
// not lose the record.
func (r *Recorder) Record(ctx context.Context, record domain.AuditRecord) {
	if err := r.repo.Log(context.WithoutCancel(ctx), record); err != nil {
		metrics.AuditWriteFailures.Inc()
		attrs := []any{
			slog.String("action", record.Action.String()),
			slog.String("entity_type", record.EntityType.String()),
			slog.String("user_id", record.UserID.String()),
			slog.String("error", err.Error()),
		}
		if record.EntityID != nil {
			attrs = append(attrs, slog.String("entity_id", record.EntityID.String()))
		}
		r.log.ErrorContext(ctx, "audit write failed", attrs...)
	}
}

// ListInput narrows an audit log read.
type ListInput struct {
	EntityType *domain.EntityType
	Limit      int
}

// List returns the newest audit records. Admin only.
func (r *Recorder) List(ctx context.Context, input ListInput) ([]domain.AuditRecord, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if input.EntityType != nil && !input.EntityType.IsValid() {
		return nil, domain.NewValidationError("entity_type", "unknown entity type")
	}
	limit := input.Limit
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	records, err := r.repo.List(ctx, domain.AuditFilter{EntityType: input.EntityType, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}
	return records, nil
}
