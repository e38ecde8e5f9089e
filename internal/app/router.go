package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/planner-backend/internal/config"
	"github.com/heartmarshall/planner-backend/internal/metrics"
	"github.com/heartmarshall/planner-backend/internal/transport/middleware"
	"github.com/heartmarshall/planner-backend/internal/transport/rest"
)

// NewRouter registers every route and wraps the mux in the middleware
// chain. Metrics sits innermost so it sees the matched route pattern.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	c *Container,
	pool *pgxpool.Pool,
	limiter *middleware.RateLimiter,
	clock clockwork.Clock,
) http.Handler {
	mux := http.NewServeMux()

	health := rest.NewHealthHandler(pool, c.Dispatcher, Version, clock)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	auth := rest.NewAuthHandler(c.Auth, logger)
	mux.HandleFunc("POST /api/auth/register", auth.Register)
	mux.HandleFunc("POST /api/auth/login", auth.Login)
	mux.HandleFunc("GET /api/auth/me", auth.Me)

	transfer := rest.NewTransferHandler(c.Importer, cfg.Server.MaxUploadBytes, logger)
	mux.HandleFunc("POST /api/activities/upload", transfer.Upload)
	mux.HandleFunc("POST /api/activities/import", transfer.ImportInitial)
	mux.HandleFunc("GET /api/activities/export", transfer.Export)

	activities := rest.NewActivityHandler(c.Activity, logger)
	mux.HandleFunc("GET /api/activities", activities.List)
	mux.HandleFunc("POST /api/activities", activities.Create)
	mux.HandleFunc("POST /api/activities/bulk", activities.Bulk)
	mux.HandleFunc("GET /api/activities/{id}", activities.Get)
	mux.HandleFunc("PUT /api/activities/{id}", activities.Update)
	mux.HandleFunc("DELETE /api/activities/{id}", activities.Delete)

	comments := rest.NewCommentHandler(c.Comment, logger)
	mux.HandleFunc("GET /api/activities/{id}/comments", comments.List)
	mux.HandleFunc("POST /api/activities/{id}/comments", comments.Create)
	mux.HandleFunc("PUT /api/activities/{id}/comments/{commentId}", comments.Update)
	mux.HandleFunc("DELETE /api/activities/{id}/comments/{commentId}", comments.Delete)

	notifications := rest.NewNotificationHandler(c.Notification, logger)
	mux.HandleFunc("GET /api/notifications/preferences", notifications.GetPreferences)
	mux.HandleFunc("PUT /api/notifications/preferences", notifications.UpdatePreferences)
	mux.HandleFunc("POST /api/notifications/test", notifications.SendTest)
	mux.HandleFunc("GET /api/notifications/logs", notifications.Logs)

	mux.HandleFunc("GET /api/dashboard", rest.NewDashboardHandler(c.Dashboard, logger).Stats)
	mux.HandleFunc("GET /api/admin/audit", rest.NewAdminHandler(c.Audit, logger).AuditLog)

	chain := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if limiter != nil {
		chain = append(chain, limiter.Limit())
	}
	chain = append(chain, middleware.Auth(c.JWT), middleware.Metrics)

	return middleware.Chain(chain...)(mux)
}
