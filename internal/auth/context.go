package auth

import (
	"context"

	"farmvora/internal/domain"
)

type contextKey struct{}

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, contextKey{}, actor)
}

// ActorFrom returns the actor stored in ctx, or the zero Actor.
func ActorFrom(ctx context.Context) domain.Actor {
	actor, _ := ctx.Value(contextKey{}).(domain.Actor)
	return actor
}
