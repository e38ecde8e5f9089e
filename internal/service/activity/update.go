package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/metrics"
)

// UpdateActivity applies a partial update. Only the owner or an admin may
// update. The duplicate guard runs only when title or area actually change,
// and never matches the activity itself.
func (s *Service) UpdateActivity(ctx context.Context, input UpdateActivityInput) (*domain.Activity, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	patch := input.patch()

	existing, err := s.loadManaged(ctx, actor, input.ID)
	if err != nil {
		return nil, err
	}

	titleChanged := patch.Title != nil && *patch.Title != existing.Title
	areaChanged := patch.Area != nil && *patch.Area != existing.Area
	if titleChanged || areaChanged {
		next := patch.Apply(*existing)
		dup, err := s.duplicates.FindDuplicate(ctx, existing.UserID, next.Title, next.Area, &existing.ID)
		if err != nil {
			return nil, fmt.Errorf("check duplicate: %w", err)
		}
		if dup != nil {
			metrics.DuplicateConflicts.Inc()
			return nil, domain.NewConflictError(next.Title, next.Area)
		}
	}

	updated, err := s.activities.Update(ctx, existing.ID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			next := patch.Apply(*existing)
			return nil, domain.NewConflictError(next.Title, next.Area)
		}
		return nil, fmt.Errorf("update activity: %w", err)
	}

	s.audit.Record(ctx, domain.AuditRecord{
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		EntityType: domain.EntityTypeActivity,
		EntityID:   &updated.ID,
		Action:     domain.AuditActionUpdate,
		Changes:    patch.Changes(),
	})

	if patch.Status != nil && *patch.Status != existing.Status {
		s.enqueue(ctx, actor, domain.EventStatusChange, updated, existing.Status)
	}

	s.log.InfoContext(ctx, "activity updated",
		slog.String("user_id", actor.ID.String()),
		slog.String("activity_id", updated.ID.String()),
	)

	return updated, nil
}
