package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// CreateComment adds a comment to an activity the caller can see. The
// author's name and email are copied onto the comment.
func (s *Service) CreateComment(ctx context.Context, activityID uuid.UUID, content string) (*domain.Comment, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	body, err := validateContent(content)
	if err != nil {
		return nil, err
	}

	if _, err := s.visibleActivity(ctx, actor, activityID); err != nil {
		return nil, err
	}

	created, err := s.comments.Create(ctx, domain.Comment{
		ActivityID:  activityID,
		UserID:      actor.ID,
		Content:     body,
		AuthorName:  actor.DisplayName(),
		AuthorEmail: actor.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.audit.Record(ctx, domain.AuditRecord{
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		EntityType: domain.EntityTypeComment,
		EntityID:   &created.ID,
		Action:     domain.AuditActionCreate,
		Changes: map[string]any{
			"activityId": activityID.String(),
			"content":    created.Content,
		},
	})

	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", actor.ID.String()),
		slog.String("activity_id", activityID.String()),
		slog.String("comment_id", created.ID.String()),
	)
	return created, nil
}
