package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/service/audit"
	"github.com/heartmarshall/planner-backend/internal/transport/middleware"
)

type auditService interface {
	List(ctx context.Context, input audit.ListInput) ([]domain.AuditRecord, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	audit auditService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(audit auditService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		audit: audit,
		log:   logger.With("handler", "admin"),
	}
}

// AuditLog returns the newest audit records.
// GET /api/admin/audit?entity_type=activity&limit=100
func (h *AdminHandler) AuditLog(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input := audit.ListInput{Limit: limit}
	if v := queryString(r, "entity_type"); v != nil {
		et := domain.EntityType(*v)
		input.EntityType = &et
	}

	records, err := h.audit.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]auditResponse, len(records))
	for i, rec := range records {
		out[i] = toAuditResponse(rec)
	}
	writeOK(w, http.StatusOK, out, "")
}
