package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/service/notification"
)

type notificationService interface {
	GetPreferences(ctx context.Context) (*domain.NotificationPreferences, error)
	UpdatePreferences(ctx context.Context, patch domain.PreferencesPatch) (*domain.NotificationPreferences, error)
	SendTest(ctx context.Context) (notification.Result, error)
	ListLogs(ctx context.Context, limit int) ([]domain.EmailLog, error)
}

// NotificationHandler serves notification preferences, the test email and
// the delivery log.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

// GetPreferences handles GET /api/notifications/preferences.
func (h *NotificationHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.GetPreferences(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, toPreferencesResponse(prefs), "")
}

// UpdatePreferences handles PUT /api/notifications/preferences.
func (h *NotificationHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	prefs, err := h.svc.UpdatePreferences(r.Context(), req.toPatch())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, toPreferencesResponse(prefs), "preferences updated")
}

type testEmailResponse struct {
	MessageID string `json:"messageId"`
}

// SendTest handles POST /api/notifications/test.
func (h *NotificationHandler) SendTest(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.SendTest(r.Context())
	if err != nil {
		if errors.Is(err, notification.ErrDeliveryFailed) {
			h.log.WarnContext(r.Context(), "test email failed", slog.String("error", err.Error()))
			writeError(w, http.StatusBadGateway, "delivery_failed", err.Error())
			return
		}
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, testEmailResponse{MessageID: res.MessageID}, "test email sent")
}

// Logs handles GET /api/notifications/logs?limit=.
func (h *NotificationHandler) Logs(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	logs, err := h.svc.ListLogs(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]emailLogResponse, len(logs))
	for i, l := range logs {
		out[i] = toEmailLogResponse(l)
	}
	writeOK(w, http.StatusOK, out, "")
}
