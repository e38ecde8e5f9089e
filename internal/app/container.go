package app

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/planner-backend/internal/adapter/email"
	"github.com/heartmarshall/planner-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/planner-backend/internal/adapter/postgres/activity"
	auditrepo "github.com/heartmarshall/planner-backend/internal/adapter/postgres/audit"
	commentrepo "github.com/heartmarshall/planner-backend/internal/adapter/postgres/comment"
	"github.com/heartmarshall/planner-backend/internal/adapter/postgres/emaillog"
	"github.com/heartmarshall/planner-backend/internal/adapter/postgres/preference"
	userrepo "github.com/heartmarshall/planner-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/planner-backend/internal/auth"
	"github.com/heartmarshall/planner-backend/internal/config"
	"github.com/heartmarshall/planner-backend/internal/service/activity"
	"github.com/heartmarshall/planner-backend/internal/service/audit"
	authsvc "github.com/heartmarshall/planner-backend/internal/service/auth"
	"github.com/heartmarshall/planner-backend/internal/service/comment"
	"github.com/heartmarshall/planner-backend/internal/service/dashboard"
	"github.com/heartmarshall/planner-backend/internal/service/importer"
	"github.com/heartmarshall/planner-backend/internal/service/notification"
)

// Container holds every service built over one connection pool. The HTTP
// server and plannerctl share it.
type Container struct {
	Activities *activityrepo.Repo
	Users      *userrepo.Repo

	JWT          *authpkg.JWTManager
	Audit        *audit.Recorder
	Auth         *authsvc.Service
	Activity     *activity.Service
	Comment      *comment.Service
	Dashboard    *dashboard.Service
	Importer     *importer.Service
	Notification *notification.Service
	Notifier     *notification.Notifier
	Dispatcher   *notification.Dispatcher
	Digester     *notification.Digester
}

// NewContainer wires repositories and services. The notifier is built but
// not started; callers that mutate activities must Start and Shutdown it.
func NewContainer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, clock clockwork.Clock) (*Container, error) {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	activities := activityrepo.New(pool)
	users := userrepo.New(pool)
	comments := commentrepo.New(pool)
	prefs := preference.New(pool)
	emailLogs := emaillog.New(pool)
	audits := auditrepo.New(pool)

	// Notification pipeline.
	sender, err := email.New(cfg.Email, logger)
	if err != nil {
		return nil, fmt.Errorf("app: email transport: %w", err)
	}
	composer := notification.NewComposer(cfg.Email.AppURL)
	dispatcher := notification.NewDispatcher(logger, sender, emailLogs, cfg.Notification)
	gate := notification.NewGate(logger, prefs, clock, cfg.Notification.Location)
	notifier := notification.NewNotifier(logger, gate, composer, dispatcher, cfg.Notification)

	duplicates, err := activity.NewDuplicateChecker(cfg.Activity.DuplicateStrategy, activities)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	jwt := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	recorder := audit.NewRecorder(logger, audits)

	return &Container{
		Activities:   activities,
		Users:        users,
		JWT:          jwt,
		Audit:        recorder,
		Auth:         authsvc.NewService(logger, users, prefs, txm, jwt, recorder, cfg.Auth),
		Activity:     activity.NewService(logger, activities, duplicates, recorder, notifier, clock),
		Comment:      comment.NewService(logger, comments, activities, recorder, clock),
		Dashboard:    dashboard.NewService(logger, activities),
		Importer:     importer.NewService(logger, activities, txm, recorder, clock),
		Notification: notification.NewService(logger, prefs, emailLogs, recorder, composer, dispatcher),
		Notifier:     notifier,
		Dispatcher:   dispatcher,
		Digester:     notification.NewDigester(logger, users, activities, gate, composer, dispatcher),
	}, nil
}
