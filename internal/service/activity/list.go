package activity

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// ListActivities returns the caller's active activities, high priority
// first and newest first within a priority. Admins may list every user's.
func (s *Service) ListActivities(ctx context.Context, input ListInput) ([]domain.Activity, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && !input.Status.IsValid() {
		return nil, domain.NewValidationError("status", "must be pending, in_progress or completed")
	}
	if input.Priority != nil && !input.Priority.IsValid() {
		return nil, domain.NewValidationError("priority", "must be 0, 1 or 2")
	}

	f := domain.ActivityFilter{
		Status:   input.Status,
		Priority: input.Priority,
		Area:     domain.TrimOrNil(input.Area),
		Search:   domain.TrimOrNil(input.Search),
		Limit:    input.Limit,
	}
	if !(input.AllUsers && actor.IsAdmin()) {
		f.OwnerID = &actor.ID
	}
	if f.Search != nil {
		escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(*f.Search)
		f.Search = &escaped
	}

	list, err := s.activities.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return list, nil
}
