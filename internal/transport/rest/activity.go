package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/service/activity"
)

type activityService interface {
	CreateActivity(ctx context.Context, input activity.CreateActivityInput) (*domain.Activity, error)
	UpdateActivity(ctx context.Context, input activity.UpdateActivityInput) (*domain.Activity, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error
	GetActivity(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Activity, error)
	ListActivities(ctx context.Context, input activity.ListInput) ([]domain.Activity, error)
	BulkCreate(ctx context.Context, items []activity.CreateActivityInput) (*activity.BulkResult, error)
}

// ActivityHandler serves the activity CRUD endpoints.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

// List handles GET /api/activities?status=&priority=&area=&search=&all=&limit=.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	input := activity.ListInput{
		Area:     queryString(r, "area"),
		Search:   queryString(r, "search"),
		AllUsers: queryBool(r, "all"),
	}
	if s := queryString(r, "status"); s != nil {
		st := domain.ActivityStatus(*s)
		input.Status = &st
	}
	if r.URL.Query().Get("priority") != "" {
		p, err := queryInt(r, "priority")
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		prio := domain.Priority(p)
		input.Priority = &prio
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.Limit = limit

	list, err := h.svc.ListActivities(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, toActivityList(list), "")
}

// Get handles GET /api/activities/{id}?includeDeleted=true.
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.GetActivity(r.Context(), id, queryBool(r, "includeDeleted"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, toActivityResponse(a), "")
}

// Create handles POST /api/activities.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.CreateActivity(r.Context(), req.toCreateInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, toActivityResponse(a), "activity created")
}

// Update handles PUT /api/activities/{id}. Absent fields are left unchanged.
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req activityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := req.toUpdateInput()
	input.ID = id
	a, err := h.svc.UpdateActivity(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, toActivityResponse(a), "activity updated")
}

// Delete handles DELETE /api/activities/{id} (soft delete).
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteActivity(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, nil, "activity deleted")
}

type bulkRequest struct {
	Activities []activityRequest `json:"activities"`
}

// Bulk handles POST /api/activities/bulk.
func (h *ActivityHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := decodeJSONLimit(w, r, &req, maxBulkJSONBody); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]activity.CreateActivityInput, len(req.Activities))
	for i, a := range req.Activities {
		items[i] = a.toCreateInput()
	}

	res, err := h.svc.BulkCreate(r.Context(), items)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, toBulkResponse(res),
		fmt.Sprintf("%d activities created, %d rejected", len(res.Created), len(res.Failures)))
}
