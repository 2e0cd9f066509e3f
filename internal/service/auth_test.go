package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/domgiordano/sports-events/internal/domain"
	"github.com/domgiordano/sports-events/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	users   *mocks.MockUserRepo
	tokens  *mocks.MockTokenIssuer
	revoker *mocks.MockTokenRevoker
	limiter *mocks.MockAttemptLimiter
	svc     *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		users:   mocks.NewMockUserRepo(t),
		tokens:  mocks.NewMockTokenIssuer(t),
		revoker: mocks.NewMockTokenRevoker(t),
		limiter: mocks.NewMockAttemptLimiter(t),
	}
	f.svc = NewAuthService(f.users, f.tokens, f.revoker, f.limiter, bcrypt.MinCost, newTestLogger(t))
	return f
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_SignUp_Success(t *testing.T) {
	f := newAuthFixture(t)

	f.users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "fan@example.com" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
	})).Run(func(_ context.Context, u *domain.User) { u.ID = "u1" }).Return(nil)

	user, err := f.svc.SignUp(context.Background(), "  Fan@Example.com ", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "fan@example.com", user.Email)
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		message  string
	}{
		{"missing email", " ", "secret1", "Email and password are required"},
		{"missing password", "a@b.c", "", "Email and password are required"},
		{"short password", "a@b.c", "12345", "Password must be at least 6 characters"},
		{"password past the bcrypt limit", "a@b.c", strings.Repeat("a", 73), "Password must be at most 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)

			_, err := f.svc.SignUp(context.Background(), tt.email, tt.password)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.message, vErr.Message)
		})
	}
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	f := newAuthFixture(t)

	f.users.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := f.svc.SignUp(context.Background(), "a@b.c", "secret1")

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_SignIn_Success(t *testing.T) {
	f := newAuthFixture(t)
	session := &domain.Session{Token: "tok", TokenID: "j1", UserID: "u1"}

	f.limiter.EXPECT().Allow(mock.Anything, "a@b.c").Return(true, nil)
	f.users.EXPECT().GetByEmail(mock.Anything, "a@b.c").
		Return(&domain.User{ID: "u1", Email: "a@b.c", PasswordHash: hashed(t, "secret1")}, nil)
	f.tokens.EXPECT().Issue("u1").Return(session, nil)

	got, err := f.svc.SignIn(context.Background(), "A@B.C", "secret1")

	require.NoError(t, err)
	assert.Same(t, session, got)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	f.limiter.EXPECT().Allow(mock.Anything, "a@b.c").Return(true, nil)
	f.users.EXPECT().GetByEmail(mock.Anything, "a@b.c").
		Return(&domain.User{ID: "u1", PasswordHash: hashed(t, "secret1")}, nil)

	_, err := f.svc.SignIn(context.Background(), "a@b.c", "secret2")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	f.limiter.EXPECT().Allow(mock.Anything, "a@b.c").Return(true, nil)
	f.users.EXPECT().GetByEmail(mock.Anything, "a@b.c").Return(nil, domain.ErrUserNotFound)

	_, err := f.svc.SignIn(context.Background(), "a@b.c", "secret1")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_SignIn_Throttled(t *testing.T) {
	f := newAuthFixture(t)

	f.limiter.EXPECT().Allow(mock.Anything, "a@b.c").Return(false, nil)

	_, err := f.svc.SignIn(context.Background(), "a@b.c", "secret1")

	assert.ErrorIs(t, err, domain.ErrTooManyAttempts)
}

func TestAuthService_SignIn_LimiterDownFailsOpen(t *testing.T) {
	f := newAuthFixture(t)

	f.limiter.EXPECT().Allow(mock.Anything, "a@b.c").Return(false, errors.New("redis: connection refused"))
	f.users.EXPECT().GetByEmail(mock.Anything, "a@b.c").
		Return(&domain.User{ID: "u1", PasswordHash: hashed(t, "secret1")}, nil)
	f.tokens.EXPECT().Issue("u1").Return(&domain.Session{Token: "tok"}, nil)

	_, err := f.svc.SignIn(context.Background(), "a@b.c", "secret1")

	assert.NoError(t, err)
}

func TestAuthService_SignOut_RevokesUntilExpiry(t *testing.T) {
	f := newAuthFixture(t)
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	f.revoker.EXPECT().Revoke(mock.Anything, "j1", time.Hour).Return(nil)

	err := f.svc.SignOut(context.Background(), &domain.Identity{UserID: "u1", TokenID: "j1", ExpiresAt: now.Add(time.Hour)})

	assert.NoError(t, err)
}

func TestAuthService_SignUp_PasswordAtBcryptLimit(t *testing.T) {
	f := newAuthFixture(t)
	password := strings.Repeat("a", 72)

	f.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.SignUp(context.Background(), "a@b.c", password)

	assert.NoError(t, err)
}

func TestAuthService_SignOut_WithoutRevocationStore(t *testing.T) {
	f := newAuthFixture(t)

	f.revoker.EXPECT().Revoke(mock.Anything, "j1", mock.Anything).Return(domain.ErrRevocationDisabled)

	err := f.svc.SignOut(context.Background(), &domain.Identity{UserID: "u1", TokenID: "j1", ExpiresAt: time.Now().Add(time.Hour)})

	assert.NoError(t, err)
}

func TestAuthService_SignOut_RevokeFails(t *testing.T) {
	f := newAuthFixture(t)

	f.revoker.EXPECT().Revoke(mock.Anything, "j1", mock.Anything).Return(errors.New("redis: connection refused"))

	err := f.svc.SignOut(context.Background(), &domain.Identity{UserID: "u1", TokenID: "j1", ExpiresAt: time.Now().Add(time.Hour)})

	assert.Error(t, err)
}

func TestAuthService_SignOut_ExpiredTokenIsNoop(t *testing.T) {
	f := newAuthFixture(t)

	err := f.svc.SignOut(context.Background(), &domain.Identity{UserID: "u1", TokenID: "j1", ExpiresAt: time.Now().Add(-time.Minute)})

	assert.NoError(t, err)
}

func TestAuthService_SignOut_Anonymous(t *testing.T) {
	f := newAuthFixture(t)

	assert.ErrorIs(t, f.svc.SignOut(context.Background(), nil), domain.ErrUnauthenticated)
}

func TestAuthService_Authenticate(t *testing.T) {
	id := &domain.Identity{UserID: "u1", TokenID: "j1"}

	t.Run("valid", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Parse("raw").Return(id, nil)
		f.revoker.EXPECT().IsRevoked(mock.Anything, "j1").Return(false, nil)

		got, err := f.svc.Authenticate(context.Background(), "raw")

		require.NoError(t, err)
		assert.Equal(t, "u1", got.UserID)
	})

	t.Run("revoked", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Parse("raw").Return(id, nil)
		f.revoker.EXPECT().IsRevoked(mock.Anything, "j1").Return(true, nil)

		_, err := f.svc.Authenticate(context.Background(), "raw")

		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("malformed", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Parse("raw").Return(nil, domain.ErrInvalidToken)

		_, err := f.svc.Authenticate(context.Background(), "raw")

		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "a@b.c"}, nil)

		user, err := f.svc.CurrentUser(context.Background(), "u1")

		require.NoError(t, err)
		assert.Equal(t, "a@b.c", user.Email)
	})

	t.Run("deleted user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

		_, err := f.svc.CurrentUser(context.Background(), "u1")

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("anonymous", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.svc.CurrentUser(context.Background(), "")

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}
