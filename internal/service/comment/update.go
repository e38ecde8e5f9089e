package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// UpdateCommentInput identifies the comment to edit. ActivityID may be
// uuid.Nil when the caller does not know it.
type UpdateCommentInput struct {
	ActivityID uuid.UUID
	ID         uuid.UUID
	Content    string
}

// UpdateComment replaces the content of a comment. Only its author or an
// admin may edit it.
func (s *Service) UpdateComment(ctx context.Context, input UpdateCommentInput) (*domain.Comment, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	body, err := validateContent(input.Content)
	if err != nil {
		return nil, err
	}

	existing, err := s.loadMutable(ctx, actor, input.ActivityID, input.ID)
	if err != nil {
		return nil, err
	}

	updated, err := s.comments.UpdateContent(ctx, existing.ID, body, s.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	s.audit.Record(ctx, domain.AuditRecord{
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		EntityType: domain.EntityTypeComment,
		EntityID:   &updated.ID,
		Action:     domain.AuditActionUpdate,
		Changes:    map[string]any{"content": updated.Content},
	})

	s.log.InfoContext(ctx, "comment updated",
		slog.String("user_id", actor.ID.String()),
		slog.String("comment_id", updated.ID.String()),
	)
	return updated, nil
}
