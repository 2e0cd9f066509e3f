package middleware

import (
	"context"
	"strings"

	"github.com/domgiordano/sports-events/internal/domain"
	"github.com/domgiordano/sports-events/internal/identity"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (*domain.Identity, error)
}

// Authenticate resolves the bearer token into an identity on the request
// context. It never rejects a request: a missing or bad token just leaves
// the caller anonymous and the handlers decide what that means.
func Authenticate(auth Authenticator, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		id, err := auth.Authenticate(ctx, raw)
		if err != nil {
			log.LogAttrs(ctx, logger.DebugLevel, "bearer token rejected",
				logger.String("request_id", c.GetString(requestIDKey)),
				logger.String("error", err.Error()),
			)
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(identity.WithIdentity(ctx, id))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	raw := strings.TrimSpace(header[len(prefix):])
	return raw, raw != ""
}
