package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/planner-backend/internal/domain"
)

type dashboardService interface {
	Stats(ctx context.Context, allUsers bool) (*domain.ActivityStats, error)
}

// DashboardHandler serves the aggregated activity overview.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// Stats handles GET /api/dashboard?all=true.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context(), queryBool(r, "all"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, toStatsResponse(stats), "")
}
