// Package comment implements the Comment repository using PostgreSQL.
package comment

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

const (
	table     = "comments"
	returning = "RETURNING id, activity_id, user_id, content, author_name, author_email, created_at, updated_at"
)

var columns = []string{"id", "activity_id", "user_id", "content", "author_name", "author_email", "created_at", "updated_at"}

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a comment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select comment: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// ListByActivity returns an activity's comments, newest first.
func (r *Repo) ListByActivity(ctx context.Context, activityID uuid.UUID) ([]domain.Comment, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"activity_id": activityID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments: %w", err)
	}

	var rows []commentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	out := make([]domain.Comment, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Create inserts a comment.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	query, args, err := postgres.Builder.Insert(table).
		Columns("id", "activity_id", "user_id", "content", "author_name", "author_email").
		Values(c.ID, c.ActivityID, c.UserID, c.Content, c.AuthorName, c.AuthorEmail).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert comment: %w", err)
	}
	return r.getOne(ctx, c.ID, query, args)
}

// UpdateContent replaces the comment body and bumps updated_at.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, content string, at time.Time) (*domain.Comment, error) {
	query, args, err := postgres.Builder.Update(table).
		Set("content", content).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update comment: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// Delete removes the comment row.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete comment: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.Comment, error) {
	var row commentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	c := row.toDomain()
	return &c, nil
}

type commentRow struct {
	ID          uuid.UUID `db:"id"`
	ActivityID  uuid.UUID `db:"activity_id"`
	UserID      uuid.UUID `db:"user_id"`
	Content     string    `db:"content"`
	AuthorName  string    `db:"author_name"`
	AuthorEmail string    `db:"author_email"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:          r.ID,
		ActivityID:  r.ActivityID,
		UserID:      r.UserID,
		Content:     r.Content,
		AuthorName:  r.AuthorName,
		AuthorEmail: r.AuthorEmail,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
