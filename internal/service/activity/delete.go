package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// DeleteActivity soft-deletes an activity. Its comments are kept and its
// (title, area) pair becomes free for reuse.
func (s *Service) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return err
	}

	existing, err := s.loadManaged(ctx, actor, id)
	if err != nil {
		return err
	}

	deleted, err := s.activities.SoftDelete(ctx, existing.ID, s.clock.Now().UTC())
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	deletedAt := ""
	if deleted.DeletedAt != nil {
		deletedAt = deleted.DeletedAt.Format(time.RFC3339)
	}
	s.audit.Record(ctx, domain.AuditRecord{
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		EntityType: domain.EntityTypeActivity,
		EntityID:   &deleted.ID,
		Action:     domain.AuditActionDelete,
		Changes: map[string]any{
			"title":     deleted.Title,
			"area":      deleted.Area,
			"deletedAt": deletedAt,
		},
	})

	s.enqueue(ctx, actor, domain.EventDeleted, deleted, "")

	s.log.InfoContext(ctx, "activity deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("activity_id", deleted.ID.String()),
	)

	return nil
}
