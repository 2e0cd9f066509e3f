package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/domgiordano/sports-events/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, name, sport_type, date_time, description, owner_id, created_at, updated_at`

type EventRepository struct {
	store
}

func NewEventRepo(db *dbpg.DB, strategy retry.Strategy) *EventRepository {
	return &EventRepository{store: store{db: db, strategy: strategy}}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (name, sport_type, date_time, description, owner_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`

	err := r.conn(ctx).QueryRowContext(
		ctx, query,
		e.Name, e.SportType, e.DateTime, nullString(e.Description), e.OwnerID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1 AND owner_id = $2`

	row, err := r.queryRow(ctx, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidTextRepresentation(err) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidTextRepresentation(err) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) Exists(ctx context.Context, ownerID, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1 AND owner_id = $2)`

	row, err := r.queryRow(ctx, query, id, ownerID)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return false, nil
		}
		return false, fmt.Errorf("check event: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		if isInvalidTextRepresentation(err) {
			return false, nil
		}
		return false, fmt.Errorf("scan event exists: %w", err)
	}

	return exists, nil
}

// List returns the owner's events ordered by start time. Search is a
// case-insensitive substring match on the name, whitespace included.
func (r *EventRepository) List(ctx context.Context, ownerID string, filter domain.EventFilter) ([]*domain.Event, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + eventColumns + ` FROM events WHERE owner_id = $1`)
	args := []any{ownerID}

	if search := filter.Search; search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		fmt.Fprintf(&sb, ` AND name ILIKE $%d ESCAPE '\'`, len(args))
	}
	if sport := filter.SportType; sport != "" && sport != domain.SportTypeAll {
		args = append(args, sport)
		fmt.Fprintf(&sb, ` AND sport_type = $%d`, len(args))
	}
	sb.WriteString(` ORDER BY date_time ASC, created_at ASC`)

	rows, err := r.query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET name = $3, sport_type = $4, date_time = $5, description = $6, updated_at = $7
			  WHERE id = $1 AND owner_id = $2
			  RETURNING created_at`

	err := r.conn(ctx).QueryRowContext(
		ctx, query,
		e.ID, e.OwnerID, e.Name, e.SportType, e.DateTime, nullString(e.Description), e.UpdatedAt,
	).Scan(&e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidTextRepresentation(err) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM events WHERE id = $1 AND owner_id = $2`

	res, err := r.conn(ctx).ExecContext(ctx, query, id, ownerID)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	var e domain.Event
	var desc sql.NullString
	if err := s.Scan(
		&e.ID, &e.Name, &e.SportType, &e.DateTime, &desc,
		&e.OwnerID, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.Description = stringPtr(desc)
	e.DateTime = e.DateTime.UTC()

	return &e, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
