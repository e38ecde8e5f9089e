// Package preference implements the notification preferences repository.
// There is at most one row per user.
package preference

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

const table = "notification_preferences"

var columns = []string{
	"id", "user_id",
	"activity_assigned", "deadline_approaching", "status_changed",
	"activity_deleted", "daily_digest", "weekly_report",
	"quiet_hours_start", "quiet_hours_end",
	"created_at", "updated_at",
}

const returning = "RETURNING id, user_id, activity_assigned, deadline_approaching, status_changed, " +
	"activity_deleted, daily_digest, weekly_report, quiet_hours_start, quiet_hours_end, created_at, updated_at"

// Repo provides notification preferences persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new preferences repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByUser returns the user's preferences or domain.ErrNotFound.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select preferences: %w", err)
	}
	return r.getOne(ctx, userID, query, args)
}

// Upsert writes every field of p for p.UserID, inserting the row if it
// does not exist yet, and returns the stored row.
func (r *Repo) Upsert(ctx context.Context, p domain.NotificationPreferences) (*domain.NotificationPreferences, error) {
	return r.insert(ctx, p, "ON CONFLICT (user_id) DO UPDATE SET "+
		"activity_assigned = EXCLUDED.activity_assigned, "+
		"deadline_approaching = EXCLUDED.deadline_approaching, "+
		"status_changed = EXCLUDED.status_changed, "+
		"activity_deleted = EXCLUDED.activity_deleted, "+
		"daily_digest = EXCLUDED.daily_digest, "+
		"weekly_report = EXCLUDED.weekly_report, "+
		"quiet_hours_start = EXCLUDED.quiet_hours_start, "+
		"quiet_hours_end = EXCLUDED.quiet_hours_end, "+
		"updated_at = EXCLUDED.updated_at")
}

// CreateDefaults inserts the default preferences for a user. When a row
// already exists (a concurrent first read won), the existing row is
// returned untouched.
func (r *Repo) CreateDefaults(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error) {
	return r.insert(ctx, domain.DefaultNotificationPreferences(userID),
		"ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id")
}

func (r *Repo) insert(ctx context.Context, p domain.NotificationPreferences, conflict string) (*domain.NotificationPreferences, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()

	query, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(p.ID, p.UserID,
			p.ActivityAssigned, p.DeadlineApproaching, p.StatusChanged,
			p.ActivityDeleted, p.DailyDigest, p.WeeklyReport,
			p.QuietHoursStart, p.QuietHoursEnd,
			now, now).
		Suffix(conflict + " " + returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert preferences: %w", err)
	}
	return r.getOne(ctx, p.UserID, query, args)
}

func (r *Repo) getOne(ctx context.Context, userID uuid.UUID, query string, args []any) (*domain.NotificationPreferences, error) {
	var row prefsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "notification_preferences", userID)
	}
	p := row.toDomain()
	return &p, nil
}

type prefsRow struct {
	ID                  uuid.UUID `db:"id"`
	UserID              uuid.UUID `db:"user_id"`
	ActivityAssigned    bool      `db:"activity_assigned"`
	DeadlineApproaching bool      `db:"deadline_approaching"`
	StatusChanged       bool      `db:"status_changed"`
	ActivityDeleted     bool      `db:"activity_deleted"`
	DailyDigest         bool      `db:"daily_digest"`
	WeeklyReport        bool      `db:"weekly_report"`
	QuietHoursStart     *string   `db:"quiet_hours_start"`
	QuietHoursEnd       *string   `db:"quiet_hours_end"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

func (r prefsRow) toDomain() domain.NotificationPreferences {
	return domain.NotificationPreferences{
		ID:                  r.ID,
		UserID:              r.UserID,
		ActivityAssigned:    r.ActivityAssigned,
		DeadlineApproaching: r.DeadlineApproaching,
		StatusChanged:       r.StatusChanged,
		ActivityDeleted:     r.ActivityDeleted,
		DailyDigest:         r.DailyDigest,
		WeeklyReport:        r.WeeklyReport,
		QuietHoursStart:     r.QuietHoursStart,
		QuietHoursEnd:       r.QuietHoursEnd,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}
