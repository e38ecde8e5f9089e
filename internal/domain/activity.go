package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field limits shared by validation and storage.
const (
	MaxTitleLen       = 255
	MaxDescriptionLen = 5000
	MaxAreaLen        = 100
	MaxResponsibleLen = 100
	MaxDeadlineLen    = 50
	MaxLocationLen    = 200
	MaxHowLen         = 5000
	MaxCostLen        = 50
	MaxBulkItems      = 1000
)

// Activity is a 5W2H work item: What (Title), Why (Description), Who
// (Responsible), When (Deadline), Where (Location), How, How much (Cost).
type Activity struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	Area        string
	Priority    Priority
	Status      ActivityStatus
	Responsible *string
	Deadline    *string
	Location    *string
	How         *string
	Cost        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsDeleted returns true if the activity has been soft-deleted.
func (a *Activity) IsDeleted() bool {
	return a.DeletedAt != nil
}

// ActivityPatch is a partial update. Nil fields are left untouched.
type ActivityPatch struct {
	Title       *string
	Description *string
	Area        *string
	Priority    *Priority
	Status      *ActivityStatus
	Responsible *string
	Deadline    *string
	Location    *string
	How         *string
	Cost        *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ActivityPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Area == nil &&
		p.Priority == nil && p.Status == nil && p.Responsible == nil &&
		p.Deadline == nil && p.Location == nil && p.How == nil && p.Cost == nil
}

// Changes renders the patch as an audit payload keyed by field name.
func (p ActivityPatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Area != nil {
		changes["area"] = *p.Area
	}
	if p.Priority != nil {
		changes["priority"] = int(*p.Priority)
	}
	if p.Status != nil {
		changes["status"] = p.Status.String()
	}
	if p.Responsible != nil {
		changes["responsible"] = *p.Responsible
	}
	if p.Deadline != nil {
		changes["deadline"] = *p.Deadline
	}
	if p.Location != nil {
		changes["location"] = *p.Location
	}
	if p.How != nil {
		changes["how"] = *p.How
	}
	if p.Cost != nil {
		changes["cost"] = *p.Cost
	}
	return changes
}

// Apply returns a copy of a with the patch applied.
func (p ActivityPatch) Apply(a Activity) Activity {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = p.Description
	}
	if p.Area != nil {
		a.Area = *p.Area
	}
	if p.Priority != nil {
		a.Priority = *p.Priority
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Responsible != nil {
		a.Responsible = p.Responsible
	}
	if p.Deadline != nil {
		a.Deadline = p.Deadline
	}
	if p.Location != nil {
		a.Location = p.Location
	}
	if p.How != nil {
		a.How = p.How
	}
	if p.Cost != nil {
		a.Cost = p.Cost
	}
	return a
}

// ActivityFilter narrows activity listings.
type ActivityFilter struct {
	// OwnerID restricts to one owner; nil means all owners.
	OwnerID        *uuid.UUID
	Status         *ActivityStatus
	// ExcludeStatus drops activities in that status.
	ExcludeStatus  *ActivityStatus
	Priority       *Priority
	Area           *string
	Search         *string
	IncludeDeleted bool
	Limit          int
}

// ActivityStats aggregates an owner's active activities.
type ActivityStats struct {
	Total          int
	ByStatus       map[ActivityStatus]int
	ByPriority     map[Priority]int
	ByArea         map[string]int
	CompletionRate float64
	Recent         []Activity
}
