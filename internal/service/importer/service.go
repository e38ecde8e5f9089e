// Package importer moves activities in and out of the planner in bulk:
// the embedded initial action plan, spreadsheet upload parsing (.xlsx or
// CSV) and spreadsheet export.
package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/planner-backend/internal/domain"
)

type activityStore interface {
	CountAll(ctx context.Context) (int, error)
	SoftDeleteAllByOwner(ctx context.Context, ownerID uuid.UUID, at time.Time) (int, error)
	BulkInsert(ctx context.Context, items []domain.Activity) (int, error)
	List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type auditRecorder interface {
	Record(ctx context.Context, record domain.AuditRecord)
}

// Service implements the import and export operations.
type Service struct {
	log        *slog.Logger
	activities activityStore
	tx         txManager
	audit      auditRecorder
	clock      clockwork.Clock
}

// NewService creates a new importer service.
func NewService(
	logger *slog.Logger,
	activities activityStore,
	tx txManager,
	audit auditRecorder,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:        logger.With("service", "importer"),
		activities: activities,
		tx:         tx,
		audit:      audit,
		clock:      clock,
	}
}
