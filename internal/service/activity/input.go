package activity

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/domain"
)

// CreateActivityInput holds the parameters for creating an activity.
// Priority and Status fall back to medium and pending.
type CreateActivityInput struct {
	Title       string
	Description *string
	Area        string
	Priority    *domain.Priority
	Status      *domain.ActivityStatus
	Responsible *string
	Deadline    *string
	Location    *string
	How         *string
	Cost        *string
}

// Validate checks all fields and collects all errors.
func (i CreateActivityInput) Validate() error {
	var errs []domain.FieldError

	errs = checkRequired(errs, "title", i.Title, domain.MaxTitleLen)
	errs = checkRequired(errs, "area", i.Area, domain.MaxAreaLen)
	errs = checkOptional(errs, i.Description, i.Responsible, i.Deadline, i.Location, i.How, i.Cost)
	errs = checkEnums(errs, i.Priority, i.Status)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateActivityInput) toActivity(ownerID uuid.UUID) domain.Activity {
	a := domain.Activity{
		UserID:      ownerID,
		Title:       strings.TrimSpace(i.Title),
		Description: domain.TrimOrNil(i.Description),
		Area:        strings.TrimSpace(i.Area),
		Priority:    domain.PriorityMedium,
		Status:      domain.ActivityStatusPending,
		Responsible: domain.TrimOrNil(i.Responsible),
		Deadline:    domain.TrimOrNil(i.Deadline),
		Location:    domain.TrimOrNil(i.Location),
		How:         domain.TrimOrNil(i.How),
		Cost:        domain.TrimOrNil(i.Cost),
	}
	if i.Priority != nil {
		a.Priority = *i.Priority
	}
	if i.Status != nil {
		a.Status = *i.Status
	}
	return a
}

// UpdateActivityInput holds a partial update. nil leaves a field unchanged;
// an empty optional string clears it.
type UpdateActivityInput struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	Area        *string
	Priority    *domain.Priority
	Status      *domain.ActivityStatus
	Responsible *string
	Deadline    *string
	Location    *string
	How         *string
	Cost        *string
}

// Validate checks all fields and collects all errors.
func (i UpdateActivityInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.patch().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = checkRequired(errs, "title", *i.Title, domain.MaxTitleLen)
	}
	if i.Area != nil {
		errs = checkRequired(errs, "area", *i.Area, domain.MaxAreaLen)
	}
	errs = checkOptional(errs, i.Description, i.Responsible, i.Deadline, i.Location, i.How, i.Cost)
	errs = checkEnums(errs, i.Priority, i.Status)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateActivityInput) patch() domain.ActivityPatch {
	return domain.ActivityPatch{
		Title:       trimPtr(i.Title),
		Description: trimPtr(i.Description),
		Area:        trimPtr(i.Area),
		Priority:    i.Priority,
		Status:      i.Status,
		Responsible: trimPtr(i.Responsible),
		Deadline:    trimPtr(i.Deadline),
		Location:    trimPtr(i.Location),
		How:         trimPtr(i.How),
		Cost:        trimPtr(i.Cost),
	}
}

// ListInput narrows ListActivities. AllUsers is honoured for admins only.
type ListInput struct {
	Status   *domain.ActivityStatus
	Priority *domain.Priority
	Area     *string
	Search   *string
	AllUsers bool
	Limit    int
}

// ---------------------------------------------------------------------------
// Validation helpers
// ---------------------------------------------------------------------------

type optionalField struct {
	name string
	max  int
}

var optionalFields = []optionalField{
	{"description", domain.MaxDescriptionLen},
	{"responsible", domain.MaxResponsibleLen},
	{"deadline", domain.MaxDeadlineLen},
	{"location", domain.MaxLocationLen},
	{"how", domain.MaxHowLen},
	{"cost", domain.MaxCostLen},
}

func checkRequired(errs []domain.FieldError, field, value string, max int) []domain.FieldError {
	v := strings.TrimSpace(value)
	if v == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(v) > max {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", max)})
	}
	return errs
}

// checkOptional expects values in optionalFields order.
func checkOptional(errs []domain.FieldError, values ...*string) []domain.FieldError {
	for idx, v := range values {
		if v == nil {
			continue
		}
		f := optionalFields[idx]
		if utf8.RuneCountInString(strings.TrimSpace(*v)) > f.max {
			errs = append(errs, domain.FieldError{Field: f.name, Message: fmt.Sprintf("max %d characters", f.max)})
		}
	}
	return errs
}

func checkEnums(errs []domain.FieldError, p *domain.Priority, st *domain.ActivityStatus) []domain.FieldError {
	if p != nil && !p.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be 0, 1 or 2"})
	}
	if st != nil && !st.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, in_progress or completed"})
	}
	return errs
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
