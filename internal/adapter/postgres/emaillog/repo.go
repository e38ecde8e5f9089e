// Package emaillog implements the append-only email delivery log.
package emaillog

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

var columns = []string{"id", "user_id", "email_type", "activity_id", "sent_to", "subject", "status", "error", "created_at"}

// Repo provides email log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new email log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends one delivery attempt.
func (r *Repo) Create(ctx context.Context, l domain.EmailLog) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	query, args, err := postgres.Builder.Insert("email_logs").
		Columns(columns...).
		Values(l.ID, l.UserID, string(l.EmailType), l.ActivityID, l.SentTo, l.Subject,
			string(l.Status), l.Error, l.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert email_log: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "email_log", l.ID)
	}
	return nil
}

// ListByUser returns the user's delivery attempts, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.EmailLog, error) {
	query, args, err := postgres.Builder.Select(columns...).From("email_logs").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list email_logs: %w", err)
	}

	var rows []logRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list email_logs: %w", err)
	}

	out := make([]domain.EmailLog, len(rows))
	for i, row := range rows {
		out[i] = domain.EmailLog{
			ID:         row.ID,
			UserID:     row.UserID,
			EmailType:  domain.EventType(row.EmailType),
			ActivityID: row.ActivityID,
			SentTo:     row.SentTo,
			Subject:    row.Subject,
			Status:     domain.EmailStatus(row.Status),
			Error:      row.Error,
			CreatedAt:  row.CreatedAt,
		}
	}
	return out, nil
}

// DeleteBefore removes log entries created before cutoff and returns how
// many were removed.
func (r *Repo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := postgres.Builder.Delete("email_logs").
		Where(sq.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete email_logs: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete email_logs: %w", err)
	}
	return tag.RowsAffected(), nil
}

type logRow struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	EmailType  string     `db:"email_type"`
	ActivityID *uuid.UUID `db:"activity_id"`
	SentTo     string     `db:"sent_to"`
	Subject    string     `db:"subject"`
	Status     string     `db:"status"`
	Error      *string    `db:"error"`
	CreatedAt  time.Time  `db:"created_at"`
}
