package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// InitialResult reports what ImportInitial did.
type InitialResult struct {
	Imported int
	Replaced int
	FirstUse bool
}

// ImportInitial loads the catalog into the caller's planner.
//
// On first use (no activity rows at all) anyone may import. Afterwards only
// an admin may, and only with confirm set; the admin's own active
// activities are soft-deleted before the catalog is inserted. Other users'
// rows are never touched.
func (s *Service) ImportInitial(ctx context.Context, confirm bool) (*InitialResult, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	items, err := Catalog()
	if err != nil {
		return nil, fmt.Errorf("importer.ImportInitial: %w", err)
	}

	now := s.clock.Now().UTC()
	rows := make([]domain.Activity, len(items))
	for i, in := range items {
		rows[i] = domain.Activity{
			UserID:      actor.ID,
			Title:       strings.TrimSpace(in.Title),
			Area:        strings.TrimSpace(in.Area),
			Priority:    *in.Priority,
			Status:      *in.Status,
			Description: in.Description,
			Responsible: in.Responsible,
			Deadline:    in.Deadline,
			Location:    in.Location,
			How:         in.How,
			Cost:        in.Cost,
		}
	}

	result := &InitialResult{}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		total, err := s.activities.CountAll(txCtx)
		if err != nil {
			return fmt.Errorf("count activities: %w", err)
		}
		result.FirstUse = total == 0

		if !result.FirstUse {
			if !actor.IsAdmin() {
				return fmt.Errorf("%w: only admins can reimport into a non-empty planner", domain.ErrForbidden)
			}
			if !confirm {
				return domain.NewValidationError("confirm", "reimport requires explicit confirmation")
			}
			n, err := s.activities.SoftDeleteAllByOwner(txCtx, actor.ID, now)
			if err != nil {
				return fmt.Errorf("soft delete own activities: %w", err)
			}
			result.Replaced = n
		}

		n, err := s.activities.BulkInsert(txCtx, rows)
		if err != nil {
			return fmt.Errorf("insert catalog: %w", err)
		}
		result.Imported = n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importer.ImportInitial: %w", err)
	}

	s.audit.Record(ctx, domain.AuditRecord{
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		EntityType: domain.EntityTypeActivity,
		Action:     domain.AuditActionCreate,
		Changes: map[string]any{
			"source":   "initial_import",
			"imported": result.Imported,
			"replaced": result.Replaced,
			"firstUse": result.FirstUse,
		},
	})

	s.log.InfoContext(ctx, "initial activities imported",
		slog.String("user_id", actor.ID.String()),
		slog.Int("imported", result.Imported),
		slog.Int("replaced", result.Replaced),
		slog.Bool("first_use", result.FirstUse),
	)

	return result, nil
}
