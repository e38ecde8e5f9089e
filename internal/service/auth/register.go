package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/planner-backend/internal/domain"
)

// Register creates a new user with email + password authentication and
// default notification preferences. Returns ErrAlreadyExists if the email
// is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.normalize()

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 3: Create user + preferences in a transaction.
	// Email uniqueness is enforced by a DB constraint.
	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.Create(txCtx, domain.User{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: string(hash),
			Role:         domain.UserRoleUser,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if _, err := s.prefs.CreateDefaults(txCtx, user.ID); err != nil {
			return fmt.Errorf("create preferences: %w", err)
		}
		created = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.audit.Record(ctx, domain.AuditRecord{
		UserID:     created.ID,
		UserEmail:  created.Email,
		EntityType: domain.EntityTypeUser,
		EntityID:   &created.ID,
		Action:     domain.AuditActionCreate,
		Changes:    map[string]any{"email": created.Email, "name": created.Name},
	})

	// Step 4: Issue token
	result, err := s.issueToken(created)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()))

	return result, nil
}
