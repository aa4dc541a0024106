package server

import (
	"context"

	"github.com/grishma-roka/Campus-Cart/internal/storage"
)

type contextKey string

const actorContextKey contextKey = "actor"

func withActor(ctx context.Context, actor *storage.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

// actorFrom returns the authenticated caller placed on the context by the
// auth middleware.
func actorFrom(ctx context.Context) (*storage.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(*storage.Actor)
	return actor, ok
}
