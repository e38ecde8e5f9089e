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

// CreateActivity creates an activity owned by the caller. A (title, area)
// pair already used by one of the caller's active activities is rejected
// with *domain.ConflictError and nothing is written.
func (s *Service) CreateActivity(ctx context.Context, input CreateActivityInput) (*domain.Activity, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	a := input.toActivity(actor.ID)

	dup, err := s.duplicates.FindDuplicate(ctx, actor.ID, a.Title, a.Area, nil)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if dup != nil {
		metrics.DuplicateConflicts.Inc()
		return nil, domain.NewConflictError(a.Title, a.Area)
	}

	created, err := s.activities.Create(ctx, a)
	if err != nil {
		// Lost the race against a concurrent create of the same pair.
		if errors.Is(err, domain.ErrAlreadyExists) {
			metrics.DuplicateConflicts.Inc()
			return nil, domain.NewConflictError(a.Title, a.Area)
		}
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.audit.Record(ctx, domain.AuditRecord{
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		EntityType: domain.EntityTypeActivity,
		EntityID:   &created.ID,
		Action:     domain.AuditActionCreate,
		Changes:    createdChanges(created),
	})

	if created.Responsible != nil {
		s.enqueue(ctx, actor, domain.EventAssigned, created, "")
	}

	s.log.InfoContext(ctx, "activity created",
		slog.String("user_id", actor.ID.String()),
		slog.String("activity_id", created.ID.String()),
		slog.String("area", created.Area),
	)

	return created, nil
}

func createdChanges(a *domain.Activity) map[string]any {
	changes := map[string]any{
		"title":    a.Title,
		"area":     a.Area,
		"priority": int(a.Priority),
		"status":   a.Status.String(),
	}
	optional := map[string]*string{
		"description": a.Description,
		"responsible": a.Responsible,
		"deadline":    a.Deadline,
		"location":    a.Location,
		"how":         a.How,
		"cost":        a.Cost,
	}
	for k, v := range optional {
		if v != nil {
			changes[k] = *v
		}
	}
	return changes
}
