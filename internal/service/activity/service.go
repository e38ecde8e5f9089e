// Package activity implements the activity lifecycle: create, update,
// soft delete and read, each mutation followed by an audit record and a
// queued notification.
package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/planner-backend/internal/domain"
)

type activityRepo interface {
	GetByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Activity, error)
	List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error)
	Create(ctx context.Context, a domain.Activity) (*domain.Activity, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ActivityPatch) (*domain.Activity, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Activity, error)
}

type auditRecorder interface {
	Record(ctx context.Context, record domain.AuditRecord)
}

type notifier interface {
	Enqueue(ctx context.Context, ev domain.NotificationEvent) bool
}

// Service provides activity lifecycle operations.
type Service struct {
	activities activityRepo
	duplicates DuplicateChecker
	audit      auditRecorder
	notifier   notifier
	clock      clockwork.Clock
	log        *slog.Logger
}

// NewService creates a new activity service.
func NewService(
	log *slog.Logger,
	activities activityRepo,
	duplicates DuplicateChecker,
	audit auditRecorder,
	notifier notifier,
	clock clockwork.Clock,
) *Service {
	return &Service{
		activities: activities,
		duplicates: duplicates,
		audit:      audit,
		notifier:   notifier,
		clock:      clock,
		log:        log.With("service", "activity"),
	}
}

// loadManaged loads an active activity and checks that the actor may
// mutate it.
func (s *Service) loadManaged(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(a.UserID) {
		return nil, domain.ErrForbidden
	}
	return a, nil
}

func (s *Service) enqueue(ctx context.Context, actor domain.Actor, event domain.EventType, a *domain.Activity, oldStatus domain.ActivityStatus) {
	ev := domain.NotificationEvent{
		Type:      event,
		UserID:    actor.ID,
		To:        actor.Email,
		UserName:  actor.DisplayName(),
		Activity:  *a,
		OldStatus: oldStatus,
		NewStatus: a.Status,
	}
	if !s.notifier.Enqueue(ctx, ev) {
		s.log.WarnContext(ctx, "notification not queued",
			slog.String("event", event.String()),
			slog.String("activity_id", a.ID.String()),
		)
	}
}
