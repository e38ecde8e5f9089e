// Package activity implements the Activity repository using PostgreSQL.
// Soft-deleted rows stay in the table with deleted_at set and are excluded
// from every read unless the caller asks for them explicitly.
package activity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// UniqueIndex is the partial unique index guarding (owner, title, area)
// among active rows.
const UniqueIndex = "activities_owner_title_area_uniq"

const table = "activities"

var columns = []string{
	"id", "user_id", "title", "description", "area", "priority", "status",
	"responsible", "deadline", "location", "how", "cost",
	"created_at", "updated_at", "deleted_at",
}

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// SupportsCaseInsensitiveLookup reports that FindActiveByTitleArea compares
// in SQL, so the duplicate guard can use the native strategy.
func (r *Repo) SupportsCaseInsensitiveLookup() bool { return true }

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an activity by primary key. Soft-deleted rows are
// reported as not found unless includeDeleted is set.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Activity, error) {
	b := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})
	if !includeDeleted {
		b = b.Where(sq.Eq{"deleted_at": nil})
	}

	a, err := r.getOne(ctx, b)
	if err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}
	return a, nil
}

// List returns activities matching the filter ordered by priority
// (high first), then newest first.
func (r *Repo) List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error) {
	b := postgres.Builder.Select(columns...).From(table).
		OrderBy("priority ASC", "created_at DESC")

	if f.OwnerID != nil {
		b = b.Where(sq.Eq{"user_id": *f.OwnerID})
	}
	if !f.IncludeDeleted {
		b = b.Where(sq.Eq{"deleted_at": nil})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.ExcludeStatus != nil {
		b = b.Where(sq.NotEq{"status": string(*f.ExcludeStatus)})
	}
	if f.Priority != nil {
		b = b.Where(sq.Eq{"priority": int16(*f.Priority)})
	}
	if f.Area != nil {
		b = b.Where(sq.Expr("lower(area) = lower(?)", *f.Area))
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
			sq.ILike{"responsible": pattern},
		})
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}

	return r.selectMany(ctx, b)
}

// ListActiveByOwner returns every non-deleted activity of the owner except
// excludeID. It backs the scan duplicate strategy.
func (r *Repo) ListActiveByOwner(ctx context.Context, ownerID uuid.UUID, excludeID *uuid.UUID) ([]domain.Activity, error) {
	b := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"user_id": ownerID, "deleted_at": nil}).
		OrderBy("created_at ASC")
	if excludeID != nil {
		b = b.Where(sq.NotEq{"id": *excludeID})
	}
	return r.selectMany(ctx, b)
}

// FindActiveByTitleArea returns the owner's active activity whose title and
// area match case-insensitively, or nil when there is none.
func (r *Repo) FindActiveByTitleArea(ctx context.Context, ownerID uuid.UUID, title, area string, excludeID *uuid.UUID) (*domain.Activity, error) {
	b := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"user_id": ownerID, "deleted_at": nil}).
		Where(sq.Expr("lower(title) = lower(?)", title)).
		Where(sq.Expr("lower(area) = lower(?)", area)).
		Limit(1)
	if excludeID != nil {
		b = b.Where(sq.NotEq{"id": *excludeID})
	}

	a, err := r.getOne(ctx, b)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find activity by title/area: %w", err)
	}
	return a, nil
}

// CountAll returns the number of activity rows of all users, deleted or not.
func (r *Repo) CountAll(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an activity and returns the persisted row. A collision on
// the active (owner, title, area) index maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a domain.Activity) (*domain.Activity, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	b := postgres.Builder.Insert(table).
		Columns("id", "user_id", "title", "description", "area", "priority", "status",
			"responsible", "deadline", "location", "how", "cost").
		Values(a.ID, a.UserID, a.Title, a.Description, a.Area, int16(a.Priority), string(a.Status),
			a.Responsible, a.Deadline, a.Location, a.How, a.Cost).
		Suffix(returning())

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert activity: %w", err)
	}

	var row activityRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity", a.ID)
	}
	created := row.toDomain()
	return &created, nil
}

// BulkInsert inserts all activities in a single statement and returns the
// number of rows written. Callers wrap it in a transaction when it must be
// atomic with other writes.
func (r *Repo) BulkInsert(ctx context.Context, items []domain.Activity) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	b := postgres.Builder.Insert(table).
		Columns("id", "user_id", "title", "description", "area", "priority", "status",
			"responsible", "deadline", "location", "how", "cost")
	for _, a := range items {
		id := a.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		b = b.Values(id, a.UserID, a.Title, a.Description, a.Area, int16(a.Priority), string(a.Status),
			a.Responsible, a.Deadline, a.Location, a.How, a.Cost)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build bulk insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "activity", "bulk")
	}
	return int(tag.RowsAffected()), nil
}

// Update applies the non-nil fields of patch to an active activity and
// bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.ActivityPatch) (*domain.Activity, error) {
	set := patchClauses(patch)
	set["updated_at"] = sq.Expr("now()")

	query, args, err := postgres.Builder.Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update activity: %w", err)
	}

	var row activityRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}
	updated := row.toDomain()
	return &updated, nil
}

// SoftDelete stamps deleted_at on an active activity and returns the row.
// Deleting an already deleted activity reports not found.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Activity, error) {
	query, args, err := postgres.Builder.Update(table).
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build soft delete: %w", err)
	}

	var row activityRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}
	deleted := row.toDomain()
	return &deleted, nil
}

// SoftDeleteAllByOwner stamps deleted_at on every active activity of the
// owner and returns the affected count.
func (r *Repo) SoftDeleteAllByOwner(ctx context.Context, ownerID uuid.UUID, at time.Time) (int, error) {
	query, args, err := postgres.Builder.Update(table).
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"user_id": ownerID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build soft delete by owner: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "activity owner", ownerID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, b sq.SelectBuilder) (*domain.Activity, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select activity: %w", err)
	}

	var row activityRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, err
	}
	a := row.toDomain()
	return &a, nil
}

func (r *Repo) selectMany(ctx context.Context, b sq.SelectBuilder) ([]domain.Activity, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select activities: %w", err)
	}

	var rows []activityRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("select activities: %w", err)
	}

	out := make([]domain.Activity, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}
