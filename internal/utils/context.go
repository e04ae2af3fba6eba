// Package utils holds small helpers shared by the transports: context keys,
// JWT handling, JSON responses, the HTTP client and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// IdentifierCtxKey stores the wallet owner identifier resolved from the
// bearer token.
var IdentifierCtxKey = contextKey("identifier")

// WithIdentifier returns a copy of ctx carrying identifier.
func WithIdentifier(ctx context.Context, identifier string) context.Context {
	return context.WithValue(ctx, IdentifierCtxKey, identifier)
}

// GetIdentifierFromContext returns the identifier set by the auth
// middleware. ok is false when it is missing or empty.
func GetIdentifierFromContext(ctx context.Context) (string, bool) {
	identifier, ok := ctx.Value(IdentifierCtxKey).(string)
	return identifier, ok && identifier != ""
}
