package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// BulkFailure describes one rejected item of a bulk create.
type BulkFailure struct {
	Index   int
	Title   string
	Kind    string // "conflict" or "validation"
	Message string
}

// BulkResult is the outcome of BulkCreate.
type BulkResult struct {
	Created  []*domain.Activity
	Failures []BulkFailure
}

// BulkCreate runs every item through CreateActivity. Conflicts and
// validation failures are collected per item and do not stop the batch;
// a storage failure aborts it.
func (s *Service) BulkCreate(ctx context.Context, items []CreateActivityInput) (*BulkResult, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, domain.NewValidationError("activities", "at least one item is required")
	}
	if len(items) > domain.MaxBulkItems {
		return nil, domain.NewValidationError("activities", fmt.Sprintf("max %d items", domain.MaxBulkItems))
	}

	result := &BulkResult{}
	for i, item := range items {
		created, err := s.CreateActivity(ctx, item)
		if err == nil {
			result.Created = append(result.Created, created)
			continue
		}

		failure := BulkFailure{Index: i, Title: item.Title, Message: err.Error()}
		switch {
		case errors.Is(err, domain.ErrConflict):
			failure.Kind = "conflict"
		case errors.Is(err, domain.ErrValidation):
			failure.Kind = "validation"
		default:
			return nil, fmt.Errorf("bulk create item %d: %w", i, err)
		}
		result.Failures = append(result.Failures, failure)
	}

	s.log.InfoContext(ctx, "bulk create finished",
		slog.String("user_id", actor.ID.String()),
		slog.Int("created", len(result.Created)),
		slog.Int("failed", len(result.Failures)),
	)

	return result, nil
}
