package auth

import (
	"context"

	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/pkg/ctxutil"
)

// WithActor stores the actor identity in the context.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	ctx = ctxutil.WithUserID(ctx, actor.ID)
	ctx = ctxutil.WithUserRole(ctx, actor.Role.String())
	ctx = ctxutil.WithUserEmail(ctx, actor.Email)
	return ctxutil.WithUserName(ctx, actor.Name)
}

// ActorFromCtx rebuilds the actor from the context. ok is false for
// anonymous requests.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Actor{}, false
	}
	return domain.Actor{
		ID:    id,
		Email: ctxutil.UserEmailFromCtx(ctx),
		Name:  ctxutil.UserNameFromCtx(ctx),
		Role:  domain.ParseUserRole(ctxutil.UserRoleFromCtx(ctx)),
	}, true
}

// RequireActor is ActorFromCtx returning domain.ErrUnauthorized for
// anonymous callers.
func RequireActor(ctx context.Context) (domain.Actor, error) {
	actor, ok := ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	return actor, nil
}
