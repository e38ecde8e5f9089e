package activity

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// GetActivity returns an activity visible to the caller. Soft-deleted
// activities are returned, with DeletedAt set, only when includeDeleted
// is true.
func (s *Service) GetActivity(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Activity, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	a, err := s.activities.GetByID(ctx, id, includeDeleted)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(a.UserID) {
		return nil, domain.ErrForbidden
	}
	return a, nil
}
