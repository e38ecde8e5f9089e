package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	authctx "github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

var requireActor = authctx.RequireActor

// EnsureAdmin creates an admin account, or promotes the existing account
// with that email. The password of an existing account is left unchanged.
// created reports whether a new account was made.
func (s *Service) EnsureAdmin(ctx context.Context, input EnsureAdminInput) (user *domain.User, created bool, err error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	existing, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		if existing.IsAdmin() {
			return existing, false, nil
		}
		promoted, err := s.users.SetRole(ctx, existing.ID, domain.UserRoleAdmin)
		if err != nil {
			return nil, false, fmt.Errorf("auth.EnsureAdmin promote: %w", err)
		}
		s.log.InfoContext(ctx, "user promoted to admin", slog.String("user_id", promoted.ID.String()))
		return promoted, false, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, false, fmt.Errorf("auth.EnsureAdmin get user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, false, fmt.Errorf("auth.EnsureAdmin hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.Create(txCtx, domain.User{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: string(hash),
			Role:         domain.UserRoleAdmin,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if _, err := s.prefs.CreateDefaults(txCtx, u.ID); err != nil {
			return fmt.Errorf("create preferences: %w", err)
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("auth.EnsureAdmin: %w", err)
	}

	s.log.InfoContext(ctx, "admin created", slog.String("user_id", user.ID.String()))
	return user, true, nil
}
