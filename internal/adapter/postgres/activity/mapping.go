package activity

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/domain"
)

type activityRow struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Area        string     `db:"area"`
	Priority    int16      `db:"priority"`
	Status      string     `db:"status"`
	Responsible *string    `db:"responsible"`
	Deadline    *string    `db:"deadline"`
	Location    *string    `db:"location"`
	How         *string    `db:"how"`
	Cost        *string    `db:"cost"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

func (r activityRow) toDomain() domain.Activity {
	return domain.Activity{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Area:        r.Area,
		Priority:    domain.Priority(r.Priority),
		Status:      domain.ActivityStatus(r.Status),
		Responsible: r.Responsible,
		Deadline:    r.Deadline,
		Location:    r.Location,
		How:         r.How,
		Cost:        r.Cost,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		DeletedAt:   r.DeletedAt,
	}
}

// patchClauses maps the set fields of a patch to column assignments.
// A pointer to an empty optional string clears the column.
func patchClauses(p domain.ActivityPatch) map[string]any {
	set := make(map[string]any)
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = nullIfEmpty(p.Description)
	}
	if p.Area != nil {
		set["area"] = *p.Area
	}
	if p.Priority != nil {
		set["priority"] = int16(*p.Priority)
	}
	if p.Status != nil {
		set["status"] = string(*p.Status)
	}
	if p.Responsible != nil {
		set["responsible"] = nullIfEmpty(p.Responsible)
	}
	if p.Deadline != nil {
		set["deadline"] = nullIfEmpty(p.Deadline)
	}
	if p.Location != nil {
		set["location"] = nullIfEmpty(p.Location)
	}
	if p.How != nil {
		set["how"] = nullIfEmpty(p.How)
	}
	if p.Cost != nil {
		set["cost"] = nullIfEmpty(p.Cost)
	}
	return set
}

func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
