package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/service/comment"
)

type commentService interface {
	ListComments(ctx context.Context, activityID uuid.UUID) ([]domain.Comment, error)
	CreateComment(ctx context.Context, activityID uuid.UUID, content string) (*domain.Comment, error)
	UpdateComment(ctx context.Context, input comment.UpdateCommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, activityID, id uuid.UUID) error
}

// CommentHandler serves comments nested under an activity.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type commentRequest struct {
	Content string `json:"content"`
}

// List handles GET /api/activities/{id}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	activityID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.ListComments(r.Context(), activityID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]commentResponse, len(list))
	for i := range list {
		out[i] = toCommentResponse(&list[i])
	}
	writeOK(w, http.StatusOK, out, "")
}

// Create handles POST /api/activities/{id}/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	activityID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.CreateComment(r.Context(), activityID, req.Content)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, toCommentResponse(c), "comment created")
}

// Update handles PUT /api/activities/{id}/comments/{commentId}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	activityID, commentID, ok := h.ids(w, r)
	if !ok {
		return
	}
	var req commentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.UpdateComment(r.Context(), comment.UpdateCommentInput{
		ActivityID: activityID,
		ID:         commentID,
		Content:    req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, toCommentResponse(c), "comment updated")
}

// Delete handles DELETE /api/activities/{id}/comments/{commentId}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	activityID, commentID, ok := h.ids(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteComment(r.Context(), activityID, commentID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, nil, "comment deleted")
}

func (h *CommentHandler) ids(w http.ResponseWriter, r *http.Request) (activityID, commentID uuid.UUID, ok bool) {
	activityID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return uuid.Nil, uuid.Nil, false
	}
	commentID, err = pathID(r, "commentId")
	if err != nil {
		handleError(h.log, w, r, err)
		return uuid.Nil, uuid.Nil, false
	}
	return activityID, commentID, true
}
