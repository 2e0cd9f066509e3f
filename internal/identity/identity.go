// Package identity carries the authenticated caller through a request context.
package identity

import (
	"context"

	"github.com/domgiordano/sports-events/internal/domain"
)

type ctxKey struct{}

func WithIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the caller's identity, if any.
func FromContext(ctx context.Context) (*domain.Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(*domain.Identity)
	return id, ok && id != nil
}

// UserID returns the caller's user id or "" when unauthenticated.
func UserID(ctx context.Context) string {
	if id, ok := FromContext(ctx); ok {
		return id.UserID
	}
	return ""
}
