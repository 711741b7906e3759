// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/lending-service/internal/types"
)

// Private custom types to avoid context key collisions
type identityContextKey struct{}
type actorContextKey struct{}

var identityKey identityContextKey
var actorKey actorContextKey

// WithIdentityID returns a new context carrying the verified identity ID.
func WithIdentityID(ctx context.Context, identityID string) context.Context {
	return context.WithValue(ctx, identityKey, identityID)
}

// GetIdentityID retrieves the identity ID from the context.
func GetIdentityID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(identityKey).(string)
	return id, ok && id != ""
}

// WithActor returns a new context carrying the resolved actor.
func WithActor(ctx context.Context, actor types.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor retrieves the resolved actor from the context.
func GetActor(ctx context.Context) (types.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(types.Actor)
	return actor, ok
}
