package session

import (
	"context"
	"fmt"
	"time"

	"github.com/domgiordano/sports-events/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	revokedPrefix  = "session:revoked:"
	attemptsPrefix = "session:signin:"
)

// RevocationList remembers signed-out token ids until they expire.
type RevocationList struct {
	rdb redis.Cmdable
}

func NewRevocationList(rdb redis.Cmdable) *RevocationList {
	return &RevocationList{rdb: rdb}
}

func (l *RevocationList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := l.rdb.Set(ctx, revokedPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (l *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.rdb.Exists(ctx, revokedPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}

// AttemptLimiter allows at most max sign-in attempts per key in a fixed window.
type AttemptLimiter struct {
	rdb    redis.Cmdable
	max    int64
	window time.Duration
}

func NewAttemptLimiter(rdb redis.Cmdable, max int, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{rdb: rdb, max: int64(max), window: window}
}

func (l *AttemptLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := attemptsPrefix + key

	n, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("count attempts: %w", err)
	}
	if n == 1 {
		if err = l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("expire attempts: %w", err)
		}
	}

	return n <= l.max, nil
}

// Disabled is used when no redis is configured: nothing is ever revoked
// and every attempt is allowed.
type Disabled struct{}

func (Disabled) Revoke(context.Context, string, time.Duration) error {
	return domain.ErrRevocationDisabled
}

func (Disabled) IsRevoked(context.Context, string) (bool, error) { return false, nil }

func (Disabled) Allow(context.Context, string) (bool, error) { return true, nil }
