package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/domgiordano/sports-events/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	store
}

func NewUserRepo(db *dbpg.DB, strategy retry.Strategy) *UserRepository {
	return &UserRepository{store: store{db: db, strategy: strategy}}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, password_hash)
			  VALUES ($1, $2)
			  RETURNING id, created_at`

	err := r.conn(ctx).QueryRowContext(ctx, query, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, created_at
			  FROM users
			  WHERE id = $1`

	return r.get(ctx, query, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, created_at
			  FROM users
			  WHERE email = $1`

	return r.get(ctx, query, email)
}

func (r *UserRepository) get(ctx context.Context, query string, arg string) (*domain.User, error) {
	row, err := r.queryRow(ctx, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidTextRepresentation(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidTextRepresentation(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}
