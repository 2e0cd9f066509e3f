package identity

import (
	"context"
	"testing"

	"github.com/domgiordano/sports-events/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUserID(t *testing.T) {
	assert.Empty(t, UserID(context.Background()))
	assert.Empty(t, UserID(WithIdentity(context.Background(), nil)))

	ctx := WithIdentity(context.Background(), &domain.Identity{UserID: "u1", TokenID: "j1"})
	assert.Equal(t, "u1", UserID(ctx))

	id, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "j1", id.TokenID)
}
