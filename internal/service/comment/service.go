// Package comment implements comments on activities.
package comment

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/planner-backend/internal/domain"
)

type commentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByActivity(ctx context.Context, activityID uuid.UUID) ([]domain.Comment, error)
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string, at time.Time) (*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type activityReader interface {
	GetByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Activity, error)
}

type auditRecorder interface {
	Record(ctx context.Context, record domain.AuditRecord)
}

// Service provides comment operations.
type Service struct {
	comments   commentRepo
	activities activityReader
	audit      auditRecorder
	clock      clockwork.Clock
	log        *slog.Logger
}

// NewService creates a new comment service.
func NewService(
	log *slog.Logger,
	comments commentRepo,
	activities activityReader,
	audit auditRecorder,
	clock clockwork.Clock,
) *Service {
	return &Service{
		comments:   comments,
		activities: activities,
		audit:      audit,
		clock:      clock,
		log:        log.With("service", "comment"),
	}
}

// CanMutate reports whether actor may edit or delete c: its author or an
// admin.
func CanMutate(c *domain.Comment, actor domain.Actor) bool {
	return c.UserID == actor.ID || actor.IsAdmin()
}

// visibleActivity loads an active activity the actor may comment on.
func (s *Service) visibleActivity(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(a.UserID) {
		return nil, domain.ErrForbidden
	}
	return a, nil
}

// loadMutable loads a comment and applies the ownership guard. When
// activityID is set the comment must belong to that activity.
func (s *Service) loadMutable(ctx context.Context, actor domain.Actor, activityID, id uuid.UUID) (*domain.Comment, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activityID != uuid.Nil && c.ActivityID != activityID {
		return nil, domain.ErrNotFound
	}
	if !CanMutate(c, actor) {
		return nil, domain.ErrForbidden
	}
	return c, nil
}

func validateContent(content string) (string, error) {
	v := strings.TrimSpace(content)
	if v == "" {
		return "", domain.NewValidationError("content", "required")
	}
	if utf8.RuneCountInString(v) > domain.MaxCommentLen {
		return "", domain.NewValidationError("content", "max 5000 characters")
	}
	return v, nil
}
