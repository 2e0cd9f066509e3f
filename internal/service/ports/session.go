package ports

import (
	"context"
	"time"

	"github.com/domgiordano/sports-events/internal/domain"
)

type TokenIssuer interface {
	Issue(userID string) (*domain.Session, error)
	Parse(raw string) (*domain.Identity, error)
}

type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
