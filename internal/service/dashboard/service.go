// Package dashboard aggregates activity counts for the overview page.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// RecentLimit is the number of latest activities included in the stats.
const RecentLimit = 5

type statsRepo interface {
	CountByStatus(ctx context.Context, ownerID *uuid.UUID) (map[domain.ActivityStatus]int, error)
	CountByPriority(ctx context.Context, ownerID *uuid.UUID) (map[domain.Priority]int, error)
	CountByArea(ctx context.Context, ownerID *uuid.UUID) (map[string]int, error)
	Recent(ctx context.Context, ownerID *uuid.UUID, limit int) ([]domain.Activity, error)
}

// Service computes dashboard statistics.
type Service struct {
	log   *slog.Logger
	stats statsRepo
}

// NewService creates a new dashboard service.
func NewService(logger *slog.Logger, stats statsRepo) *Service {
	return &Service{
		log:   logger.With("service", "dashboard"),
		stats: stats,
	}
}

// Stats returns counts over the caller's active activities. Admins may
// pass allUsers to aggregate over every owner.
func (s *Service) Stats(ctx context.Context, allUsers bool) (*domain.ActivityStats, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	var owner *uuid.UUID
	if !(allUsers && actor.IsAdmin()) {
		owner = &actor.ID
	}

	stats := &domain.ActivityStats{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats.ByStatus, err = s.stats.CountByStatus(gctx, owner)
		if err != nil {
			return fmt.Errorf("count by status: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats.ByPriority, err = s.stats.CountByPriority(gctx, owner)
		if err != nil {
			return fmt.Errorf("count by priority: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats.ByArea, err = s.stats.CountByArea(gctx, owner)
		if err != nil {
			return fmt.Errorf("count by area: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats.Recent, err = s.stats.Recent(gctx, owner, RecentLimit)
		if err != nil {
			return fmt.Errorf("recent activities: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard.Stats: %w", err)
	}

	for _, n := range stats.ByStatus {
		stats.Total += n
	}
	stats.CompletionRate = CompletionRate(stats.ByStatus[domain.ActivityStatusCompleted], stats.Total)

	return stats, nil
}

// CompletionRate returns completed/total as a percentage rounded to one
// decimal place; 0 when there are no activities.
func CompletionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}
