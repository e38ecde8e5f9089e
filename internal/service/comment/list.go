package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// ListComments returns an activity's comments, newest first.
func (s *Service) ListComments(ctx context.Context, activityID uuid.UUID) ([]domain.Comment, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.visibleActivity(ctx, actor, activityID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
