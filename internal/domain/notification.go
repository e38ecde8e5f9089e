package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// IsValidClock reports whether s is a 24h HH:MM value.
func IsValidClock(s string) bool {
	return clockPattern.MatchString(s)
}

// NotificationPreferences holds the per-user notification switches.
type NotificationPreferences struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	ActivityAssigned    bool
	DeadlineApproaching bool
	StatusChanged       bool
	ActivityDeleted     bool
	DailyDigest         bool
	WeeklyReport        bool
	QuietHoursStart     *string
	QuietHoursEnd       *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultNotificationPreferences returns preferences with every flag enabled
// and no quiet hours.
func DefaultNotificationPreferences(userID uuid.UUID) NotificationPreferences {
	return NotificationPreferences{
		UserID:              userID,
		ActivityAssigned:    true,
		DeadlineApproaching: true,
		StatusChanged:       true,
		ActivityDeleted:     true,
		DailyDigest:         true,
		WeeklyReport:        true,
	}
}

// Enabled returns the flag mapped to the event type. Unknown types are
// treated as enabled.
func (p *NotificationPreferences) Enabled(event EventType) bool {
	switch event {
	case EventAssigned:
		return p.ActivityAssigned
	case EventDeadline:
		return p.DeadlineApproaching
	case EventStatusChange:
		return p.StatusChanged
	case EventDeleted:
		return p.ActivityDeleted
	case EventDigest:
		return p.DailyDigest
	case EventReport:
		return p.WeeklyReport
	}
	return true
}

// InQuietHours reports whether the wall-clock time of now falls inside the
// quiet window [start, end). When start > end the window wraps past
// midnight. Both bounds must be set; otherwise there are no quiet hours.
func (p *NotificationPreferences) InQuietHours(now time.Time) bool {
	if p.QuietHoursStart == nil || p.QuietHoursEnd == nil {
		return false
	}
	return InQuietWindow(now.Format("15:04"), *p.QuietHoursStart, *p.QuietHoursEnd)
}

// InQuietWindow compares zero-padded HH:MM strings lexically.
func InQuietWindow(current, start, end string) bool {
	if start > end {
		return current >= start || current < end
	}
	return current >= start && current < end
}

// PreferencesPatch is a partial update of notification preferences.
// ClearQuietHours removes both bounds.
type PreferencesPatch struct {
	ActivityAssigned    *bool
	DeadlineApproaching *bool
	StatusChanged       *bool
	ActivityDeleted     *bool
	DailyDigest         *bool
	WeeklyReport        *bool
	QuietHoursStart     *string
	QuietHoursEnd       *string
	ClearQuietHours     bool
}

// Validate checks the quiet-hours format.
func (p PreferencesPatch) Validate() error {
	var errs []FieldError
	if p.QuietHoursStart != nil && !IsValidClock(*p.QuietHoursStart) {
		errs = append(errs, FieldError{Field: "quietHoursStart", Message: "must be HH:MM"})
	}
	if p.QuietHoursEnd != nil && !IsValidClock(*p.QuietHoursEnd) {
		errs = append(errs, FieldError{Field: "quietHoursEnd", Message: "must be HH:MM"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Apply returns a copy of prefs with the patch applied.
func (p PreferencesPatch) Apply(prefs NotificationPreferences) NotificationPreferences {
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&prefs.ActivityAssigned, p.ActivityAssigned)
	set(&prefs.DeadlineApproaching, p.DeadlineApproaching)
	set(&prefs.StatusChanged, p.StatusChanged)
	set(&prefs.ActivityDeleted, p.ActivityDeleted)
	set(&prefs.DailyDigest, p.DailyDigest)
	set(&prefs.WeeklyReport, p.WeeklyReport)
	if p.ClearQuietHours {
		prefs.QuietHoursStart, prefs.QuietHoursEnd = nil, nil
	}
	if p.QuietHoursStart != nil {
		prefs.QuietHoursStart = p.QuietHoursStart
	}
	if p.QuietHoursEnd != nil {
		prefs.QuietHoursEnd = p.QuietHoursEnd
	}
	return prefs
}

// EmailLog records one delivery attempt.
type EmailLog struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EmailType  EventType
	ActivityID *uuid.UUID
	SentTo     string
	Subject    string
	Status     EmailStatus
	Error      *string
	CreatedAt  time.Time
}

// NotificationEvent is handed to the notification pipeline after a
// mutation has been persisted. Activity is a snapshot taken at that time.
type NotificationEvent struct {
	Type      EventType
	UserID    uuid.UUID
	To        string
	UserName  string
	Activity  Activity
	OldStatus ActivityStatus
	NewStatus ActivityStatus
}
