package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// DeleteComment removes a comment permanently. Only its author or an
// admin may delete it. activityID may be uuid.Nil.
func (s *Service) DeleteComment(ctx context.Context, activityID, id uuid.UUID) error {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return err
	}

	existing, err := s.loadMutable(ctx, actor, activityID, id)
	if err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, existing.ID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.audit.Record(ctx, domain.AuditRecord{
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		EntityType: domain.EntityTypeComment,
		EntityID:   &existing.ID,
		Action:     domain.AuditActionDelete,
		Changes: map[string]any{
			"activityId": existing.ActivityID.String(),
			"content":    existing.Content,
		},
	})

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("comment_id", existing.ID.String()),
	)
	return nil
}
