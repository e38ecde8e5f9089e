package auth

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/planner-backend/internal/domain"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt ignores anything longer
	maxNameLen     = 100
	maxEmailLen    = 255
)

// RegisterInput holds parameters for creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func (i *RegisterInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	errs = validateEmail(errs, i.Email)
	errs = validatePassword(errs, i.Password)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EnsureAdminInput holds parameters for bootstrapping an admin account.
type EnsureAdminInput = RegisterInput

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	if email == "" {
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if len(email) > maxEmailLen {
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}

func validatePassword(errs []domain.FieldError, password string) []domain.FieldError {
	switch {
	case len(password) < minPasswordLen:
		return append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	case len(password) > maxPasswordLen:
		return append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}
	return errs
}
