package notification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/planner-backend/internal/domain"
)

type preferenceStore interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error)
	CreateDefaults(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error)
}

// Gate decides whether an event may be sent to a user right now.
type Gate struct {
	prefs preferenceStore
	clock clockwork.Clock
	loc   *time.Location
	log   *slog.Logger
}

// NewGate creates a Gate. Quiet hours are evaluated in loc; a nil loc
// means UTC.
func NewGate(log *slog.Logger, prefs preferenceStore, clock clockwork.Clock, loc *time.Location) *Gate {
	if loc == nil {
		loc = time.UTC
	}
	return &Gate{
		prefs: prefs,
		clock: clock,
		loc:   loc,
		log:   log.With("service", "notification_gate"),
	}
}

// ShouldNotify reports whether userID accepts event now. Missing
// preferences are created with every flag enabled. The gate fails open:
// when preferences cannot be read the event is allowed.
func (g *Gate) ShouldNotify(ctx context.Context, userID uuid.UUID, event domain.EventType) bool {
	if event == domain.EventTest {
		return true
	}

	prefs, err := g.prefs.GetByUser(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if _, err := g.prefs.CreateDefaults(ctx, userID); err != nil {
			g.log.WarnContext(ctx, "create default preferences",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
		return true
	case err != nil:
		g.log.WarnContext(ctx, "load preferences, allowing notification",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return true
	}

	if prefs.InQuietHours(g.clock.Now().In(g.loc)) {
		return false
	}
	return prefs.Enabled(event)
}
