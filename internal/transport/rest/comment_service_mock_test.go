package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/service/comment"
)

var _ commentService = &commentServiceMock{}

type commentServiceMock struct {
	ListCommentsFunc  func(ctx context.Context, activityID uuid.UUID) ([]domain.Comment, error)
	CreateCommentFunc func(ctx context.Context, activityID uuid.UUID, content string) (*domain.Comment, error)
	UpdateCommentFunc func(ctx context.Context, input comment.UpdateCommentInput) (*domain.Comment, error)
	DeleteCommentFunc func(ctx context.Context, activityID uuid.UUID, id uuid.UUID) error

	calls struct {
		ListComments []struct {
			Ctx        context.Context
			ActivityID uuid.UUID
		}
		CreateComment []struct {
			Ctx        context.Context
			ActivityID uuid.UUID
			Content    string
		}
		UpdateComment []struct {
			Ctx   context.Context
			Input comment.UpdateCommentInput
		}
		DeleteComment []struct {
			Ctx        context.Context
			ActivityID uuid.UUID
			ID         uuid.UUID
		}
	}
	lockListComments  sync.RWMutex
	lockCreateComment sync.RWMutex
	lockUpdateComment sync.RWMutex
	lockDeleteComment sync.RWMutex
}

func (mock *commentServiceMock) ListComments(ctx context.Context, activityID uuid.UUID) ([]domain.Comment, error) {
	if mock.ListCommentsFunc == nil {
		panic("commentServiceMock.ListCommentsFunc: method is nil but commentService.ListComments was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ActivityID uuid.UUID
	}{Ctx: ctx, ActivityID: activityID}
	mock.lockListComments.Lock()
	mock.calls.ListComments = append(mock.calls.ListComments, callInfo)
	mock.lockListComments.Unlock()
	return mock.ListCommentsFunc(ctx, activityID)
}

func (mock *commentServiceMock) ListCommentsCalls() []struct {
	Ctx        context.Context
	ActivityID uuid.UUID
} {
	mock.lockListComments.RLock()
	calls := mock.calls.ListComments
	mock.lockListComments.RUnlock()
	return calls
}

func (mock *commentServiceMock) CreateComment(ctx context.Context, activityID uuid.UUID, content string) (*domain.Comment, error) {
	if mock.CreateCommentFunc == nil {
		panic("commentServiceMock.CreateCommentFunc: method is nil but commentService.CreateComment was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ActivityID uuid.UUID
		Content    string
	}{Ctx: ctx, ActivityID: activityID, Content: content}
	mock.lockCreateComment.Lock()
	mock.calls.CreateComment = append(mock.calls.CreateComment, callInfo)
	mock.lockCreateComment.Unlock()
	return mock.CreateCommentFunc(ctx, activityID, content)
}

func (mock *commentServiceMock) CreateCommentCalls() []struct {
	Ctx        context.Context
	ActivityID uuid.UUID
	Content    string
} {
	mock.lockCreateComment.RLock()
	calls := mock.calls.CreateComment
	mock.lockCreateComment.RUnlock()
	return calls
}

func (mock *commentServiceMock) UpdateComment(ctx context.Context, input comment.UpdateCommentInput) (*domain.Comment, error) {
	if mock.UpdateCommentFunc == nil {
		panic("commentServiceMock.UpdateCommentFunc: method is nil but commentService.UpdateComment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.UpdateCommentInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateComment.Lock()
	mock.calls.UpdateComment = append(mock.calls.UpdateComment, callInfo)
	mock.lockUpdateComment.Unlock()
	return mock.UpdateCommentFunc(ctx, input)
}

func (mock *commentServiceMock) UpdateCommentCalls() []struct {
	Ctx   context.Context
	Input comment.UpdateCommentInput
} {
	mock.lockUpdateComment.RLock()
	calls := mock.calls.UpdateComment
	mock.lockUpdateComment.RUnlock()
	return calls
}

func (mock *commentServiceMock) DeleteComment(ctx context.Context, activityID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteCommentFunc == nil {
		panic("commentServiceMock.DeleteCommentFunc: method is nil but commentService.DeleteComment was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ActivityID uuid.UUID
		ID         uuid.UUID
	}{Ctx: ctx, ActivityID: activityID, ID: id}
	mock.lockDeleteComment.Lock()
	mock.calls.DeleteComment = append(mock.calls.DeleteComment, callInfo)
	mock.lockDeleteComment.Unlock()
	return mock.DeleteCommentFunc(ctx, activityID, id)
}

func (mock *commentServiceMock) DeleteCommentCalls() []struct {
	Ctx        context.Context
	ActivityID uuid.UUID
	ID         uuid.UUID
} {
	mock.lockDeleteComment.RLock()
	calls := mock.calls.DeleteComment
	mock.lockDeleteComment.RUnlock()
	return calls
}
