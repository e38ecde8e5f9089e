package activity

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

type groupCount struct {
	Key   string `db:"key"`
	Count int    `db:"count"`
}

// CountByStatus returns active activity counts keyed by status. A nil
// ownerID counts every user's activities.
func (r *Repo) CountByStatus(ctx context.Context, ownerID *uuid.UUID) (map[domain.ActivityStatus]int, error) {
	rows, err := r.countBy(ctx, "status", ownerID)
	if err != nil {
		return nil, err
	}
	out := make(map[domain.ActivityStatus]int, len(rows))
	for _, g := range rows {
		out[domain.ActivityStatus(g.Key)] = g.Count
	}
	return out, nil
}

// CountByPriority returns active activity counts keyed by priority.
func (r *Repo) CountByPriority(ctx context.Context, ownerID *uuid.UUID) (map[domain.Priority]int, error) {
	query, args, err := scoped(postgres.Builder.
		Select("priority", "count(*) AS count").
		From(table).
		GroupBy("priority"), ownerID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by priority: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count by priority: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.Priority]int)
	for rows.Next() {
		var (
			p int16
			n int
		)
		if err := rows.Scan(&p, &n); err != nil {
			return nil, fmt.Errorf("scan priority count: %w", err)
		}
		out[domain.Priority(p)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count by priority rows: %w", err)
	}
	return out, nil
}

// CountByArea returns active activity counts keyed by area as stored.
func (r *Repo) CountByArea(ctx context.Context, ownerID *uuid.UUID) (map[string]int, error) {
	rows, err := r.countBy(ctx, "area", ownerID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, g := range rows {
		out[g.Key] = g.Count
	}
	return out, nil
}

// Recent returns the newest active activities.
func (r *Repo) Recent(ctx context.Context, ownerID *uuid.UUID, limit int) ([]domain.Activity, error) {
	b := scoped(postgres.Builder.Select(columns...).From(table), ownerID).
		OrderBy("created_at DESC").
		Limit(uint64(limit))
	return r.selectMany(ctx, b)
}

func (r *Repo) countBy(ctx context.Context, column string, ownerID *uuid.UUID) ([]groupCount, error) {
	query, args, err := scoped(postgres.Builder.
		Select(column+" AS key", "count(*) AS count").
		From(table).
		GroupBy(column), ownerID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by %s: %w", column, err)
	}

	var rows []groupCount
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("count by %s: %w", column, err)
	}
	return rows, nil
}

func scoped(b sq.SelectBuilder, ownerID *uuid.UUID) sq.SelectBuilder {
	b = b.Where(sq.Eq{"deleted_at": nil})
	if ownerID != nil {
		b = b.Where(sq.Eq{"user_id": *ownerID})
	}
	return b
}
