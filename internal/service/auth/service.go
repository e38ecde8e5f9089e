// Package auth implements account registration, password login and
// admin bootstrap.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/config"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// preferenceCreator seeds notification preferences for new accounts.
type preferenceCreator interface {
	CreateDefaults(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// tokenIssuer signs access tokens.
type tokenIssuer interface {
	GenerateAccessToken(actor domain.Actor) (string, error)
}

type auditRecorder interface {
	Record(ctx context.Context, record domain.AuditRecord)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	prefs preferenceCreator
	tx    txManager
	jwt   tokenIssuer
	audit auditRecorder
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	prefs preferenceCreator,
	tx txManager,
	jwt tokenIssuer,
	audit auditRecorder,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		prefs: prefs,
		tx:    tx,
		jwt:   jwt,
		audit: audit,
		cfg:   cfg,
	}
}

// issueToken signs an access token for user.
func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, err := s.jwt.GenerateAccessToken(user.Actor())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{AccessToken: token, User: user}, nil
}
