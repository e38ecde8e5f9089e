package domain

// ActivityStatus is the workflow state of an activity.
// Any status may follow any other; there is no transition graph.
type ActivityStatus string

const (
	ActivityStatusPending    ActivityStatus = "pending"
	ActivityStatusInProgress ActivityStatus = "in_progress"
	ActivityStatusCompleted  ActivityStatus = "completed"
)

func (s ActivityStatus) String() string { return string(s) }

func (s ActivityStatus) IsValid() bool {
	switch s {
	case ActivityStatusPending, ActivityStatusInProgress, ActivityStatusCompleted:
		return true
	}
	return false
}

// Label returns the user-facing (Portuguese) name of the status.
func (s ActivityStatus) Label() string {
	switch s {
	case ActivityStatusPending:
		return "Pendente"
	case ActivityStatusInProgress:
		return "Em Andamento"
	case ActivityStatusCompleted:
		return "Concluído"
	}
	return string(s)
}

// Priority is an ordinal where lower means more urgent.
type Priority int

const (
	PriorityHigh   Priority = 0
	PriorityMedium Priority = 1
	PriorityLow    Priority = 2
)

func (p Priority) IsValid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// Label returns the user-facing (Portuguese) name of the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "Alta"
	case PriorityMedium:
		return "Média"
	case PriorityLow:
		return "Baixa"
	}
	return "Não definida"
}

// UserRole is the closed set of account roles.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin returns true if the role is admin.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// ParseUserRole converts a raw claim value into a UserRole.
// Unknown values degrade to UserRoleUser.
func ParseUserRole(s string) UserRole {
	if r := UserRole(s); r.IsValid() {
		return r
	}
	return UserRoleUser
}

// AuditAction is the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// EntityType identifies the table an audit record refers to.
type EntityType string

const (
	EntityTypeActivity                EntityType = "activity"
	EntityTypeComment                 EntityType = "comment"
	EntityTypeNotificationPreferences EntityType = "notification_preferences"
	EntityTypeUser                    EntityType = "user"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeActivity, EntityTypeComment, EntityTypeNotificationPreferences, EntityTypeUser:
		return true
	}
	return false
}

// EventType is a notification trigger. Each value maps to exactly one
// NotificationPreferences flag.
type EventType string

const (
	EventAssigned     EventType = "assigned"
	EventDeadline     EventType = "deadline"
	EventStatusChange EventType = "status_change"
	EventDeleted      EventType = "deleted"
	EventDigest       EventType = "digest"
	EventReport       EventType = "report"
	// EventTest is a manual delivery check; it bypasses preferences.
	EventTest EventType = "test"
)

func (e EventType) String() string { return string(e) }

func (e EventType) IsValid() bool {
	switch e {
	case EventAssigned, EventDeadline, EventStatusChange, EventDeleted, EventDigest, EventReport, EventTest:
		return true
	}
	return false
}

// EmailStatus is the delivery outcome stored in the email log.
type EmailStatus string

const (
	EmailStatusSent   EmailStatus = "sent"
	EmailStatusFailed EmailStatus = "failed"
)

func (s EmailStatus) String() string { return string(s) }
