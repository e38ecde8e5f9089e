package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents an application account.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// Actor returns the identity this user acts with.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  UserRole
}

// IsAdmin returns true if the actor has the admin role.
func (a Actor) IsAdmin() bool { return a.Role.IsAdmin() }

// CanManage reports whether the actor may mutate a resource owned by ownerID.
func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.ID == ownerID || a.IsAdmin()
}

// DisplayName returns Name, falling back to the local part of Email.
func (a Actor) DisplayName() string {
	if name := strings.TrimSpace(a.Name); name != "" {
		return name
	}
	if at := strings.IndexByte(a.Email, '@'); at > 0 {
		return a.Email[:at]
	}
	return a.Email
}
