package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/domgiordano/sports-events/internal/domain"
	"github.com/domgiordano/sports-events/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	// bcrypt input limit
	maxPasswordBytes = 72
)

// AuthService is the identity provider: it registers users, signs them in
// with a password and resolves bearer tokens back into identities.
type AuthService struct {
	users      ports.UserRepo
	tokens     ports.TokenIssuer
	revoker    ports.TokenRevoker
	limiter    ports.AttemptLimiter
	bcryptCost int
	logger     logger.Logger
	now        func() time.Time
}

func NewAuthService(
	users ports.UserRepo,
	tokens ports.TokenIssuer,
	revoker ports.TokenRevoker,
	limiter ports.AttemptLimiter,
	bcryptCost int,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		revoker:    revoker,
		limiter:    limiter,
		bcryptCost: bcryptCost,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *AuthService) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.NewValidationError("email", "Email and password are required")
	}
	if len(password) < minPasswordLength {
		return nil, domain.NewValidationError("password",
			fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}
	if len(password) > maxPasswordBytes {
		return nil, domain.NewValidationError("password",
			fmt.Sprintf("Password must be at most %d bytes", maxPasswordBytes))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err = s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		return nil, domain.NewStorageError("create user", err)
	}

	s.logger.Info("user registered", logger.String("user_id", user.ID))

	return user, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.NewValidationError("email", "Email and password are required")
	}

	allowed, err := s.limiter.Allow(ctx, email)
	if err != nil {
		// fail open
		s.logger.Warn("sign-in limiter unavailable", logger.String("error", err.Error()))
	} else if !allowed {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.NewStorageError("load user", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	session, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return session, nil
}

// SignOut revokes the token behind id until it would have expired anyway.
// Without a revocation store the token stays usable until it expires; that
// case is logged as a warning and not reported as an error.
func (s *AuthService) SignOut(ctx context.Context, id *domain.Identity) error {
	if id == nil || id.UserID == "" {
		return domain.ErrUnauthenticated
	}

	ttl := id.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	err := s.revoker.Revoke(ctx, id.TokenID, ttl)
	switch {
	case errors.Is(err, domain.ErrRevocationDisabled):
		s.logger.Warn("token not revoked, it stays valid until it expires",
			logger.String("user_id", id.UserID),
			logger.String("token_id", id.TokenID),
		)
		return nil
	case err != nil:
		return fmt.Errorf("revoke token: %w", err)
	}

	s.logger.Info("user signed out", logger.String("user_id", id.UserID))
	return nil
}

// CurrentUser loads the signed-in user.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, domain.NewStorageError("load user", err)
	}

	return user, nil
}

// Authenticate resolves a raw bearer token. Any failure means "no identity".
func (s *AuthService) Authenticate(ctx context.Context, raw string) (*domain.Identity, error) {
	id, err := s.tokens.Parse(raw)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoker.IsRevoked(ctx, id.TokenID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, domain.ErrInvalidToken
	}

	return id, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
