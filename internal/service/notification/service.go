package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/adapter/email"
	"github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// ErrDeliveryFailed is returned when a test email could not be sent.
var ErrDeliveryFailed = errors.New("email delivery failed")

const (
	defaultLogLimit = 50
	maxLogLimit     = 200
)

type preferenceRepo interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error)
	CreateDefaults(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error)
	Upsert(ctx context.Context, p domain.NotificationPreferences) (*domain.NotificationPreferences, error)
}

type emailLogReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.EmailLog, error)
}

type auditRecorder interface {
	Record(ctx context.Context, record domain.AuditRecord)
}

type directDispatcher interface {
	Dispatch(ctx context.Context, req DispatchRequest) Result
	Configured() bool
}

// Service exposes the caller's notification settings and history.
type Service struct {
	prefs      preferenceRepo
	logs       emailLogReader
	audit      auditRecorder
	composer   *Composer
	dispatcher directDispatcher
	log        *slog.Logger
}

// NewService creates a new notification settings service.
func NewService(
	log *slog.Logger,
	prefs preferenceRepo,
	logs emailLogReader,
	audit auditRecorder,
	composer *Composer,
	dispatcher directDispatcher,
) *Service {
	return &Service{
		prefs:      prefs,
		logs:       logs,
		audit:      audit,
		composer:   composer,
		dispatcher: dispatcher,
		log:        log.With("service", "notification"),
	}
}

// GetPreferences returns the caller's preferences, creating the defaults
// on first access.
func (s *Service) GetPreferences(ctx context.Context) (*domain.NotificationPreferences, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	return s.loadOrCreate(ctx, actor.ID)
}

func (s *Service) loadOrCreate(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error) {
	prefs, err := s.prefs.GetByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		prefs, err = s.prefs.CreateDefaults(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	return prefs, nil
}

// UpdatePreferences applies patch over the stored (or default)
// preferences.
func (s *Service) UpdatePreferences(ctx context.Context, patch domain.PreferencesPatch) (*domain.NotificationPreferences, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	current, err := s.loadOrCreate(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	saved, err := s.prefs.Upsert(ctx, patch.Apply(*current))
	if err != nil {
		return nil, fmt.Errorf("save preferences: %w", err)
	}

	s.audit.Record(ctx, domain.AuditRecord{
		UserID:     actor.ID,
		UserEmail:  actor.Email,
		EntityType: domain.EntityTypeNotificationPreferences,
		EntityID:   &saved.ID,
		Action:     domain.AuditActionUpdate,
		Changes:    preferenceChanges(patch),
	})

	s.log.InfoContext(ctx, "notification preferences updated",
		slog.String("user_id", actor.ID.String()),
	)
	return saved, nil
}

// SendTest sends a test email to the caller right away, bypassing the
// preferences and the queue. It returns email.ErrNotConfigured when no
// transport is configured.
func (s *Service) SendTest(ctx context.Context) (Result, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return Result{}, err
	}
	if actor.Email == "" {
		return Result{}, domain.NewValidationError("email", "account has no email address")
	}
	if !s.dispatcher.Configured() {
		return Result{}, email.ErrNotConfigured
	}

	msg, err := s.composer.ComposeTest(actor.DisplayName())
	if err != nil {
		return Result{}, fmt.Errorf("compose test email: %w", err)
	}

	res := s.dispatcher.Dispatch(ctx, DispatchRequest{
		UserID:  actor.ID,
		Type:    domain.EventTest,
		To:      actor.Email,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if !res.Success {
		return res, fmt.Errorf("%w: %s", ErrDeliveryFailed, res.Error)
	}
	return res, nil
}

// ListLogs returns the caller's most recent email log entries.
func (s *Service) ListLogs(ctx context.Context, limit int) ([]domain.EmailLog, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = defaultLogLimit
	case limit > maxLogLimit:
		limit = maxLogLimit
	}

	logs, err := s.logs.ListByUser(ctx, actor.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("list email logs: %w", err)
	}
	return logs, nil
}

func preferenceChanges(p domain.PreferencesPatch) map[string]any {
	changes := make(map[string]any)
	flags := map[string]*bool{
		"activityAssigned":    p.ActivityAssigned,
		"deadlineApproaching": p.DeadlineApproaching,
		"statusChanged":       p.StatusChanged,
		"activityDeleted":     p.ActivityDeleted,
		"dailyDigest":         p.DailyDigest,
		"weeklyReport":        p.WeeklyReport,
	}
	for k, v := range flags {
		if v != nil {
			changes[k] = *v
		}
	}
	if p.ClearQuietHours {
		changes["quietHoursStart"] = nil
		changes["quietHoursEnd"] = nil
	}
	if p.QuietHoursStart != nil {
		changes["quietHoursStart"] = *p.QuietHoursStart
	}
	if p.QuietHoursEnd != nil {
		changes["quietHoursEnd"] = *p.QuietHoursEnd
	}
	return changes
}
