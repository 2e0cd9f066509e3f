package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/domgiordano/sports-events/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const venueColumns = `id, event_id, name, address, capacity, created_at`

type VenueRepository struct {
	store
}

func NewVenueRepo(db *dbpg.DB, strategy retry.Strategy) *VenueRepository {
	return &VenueRepository{store: store{db: db, strategy: strategy}}
}

// CreateBatch inserts all venues of one event in a single statement and
// returns them in input order.
func (r *VenueRepository) CreateBatch(ctx context.Context, eventID string, venues []domain.Venue) ([]domain.Venue, error) {
	if len(venues) == 0 {
		return []domain.Venue{}, nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO venues (event_id, position, name, address, capacity) VALUES `)
	args := make([]any, 0, len(venues)*5)
	for i, v := range venues {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := len(args)
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5)
		args = append(args, eventID, i, v.Name, nullString(v.Address), nullInt(v.Capacity))
	}
	sb.WriteString(` RETURNING ` + venueColumns + `, position`)

	rows, err := r.conn(ctx).QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("insert venues: %w", err)
	}
	defer rows.Close()

	res := make([]domain.Venue, len(venues))
	seen := 0
	for rows.Next() {
		v, pos, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		if pos < 0 || pos >= len(res) {
			return nil, fmt.Errorf("insert venues: unexpected position %d", pos)
		}
		res[pos] = v
		seen++
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("insert venues: %w", err)
	}
	if seen != len(venues) {
		return nil, fmt.Errorf("insert venues: returned %d rows, want %d", seen, len(venues))
	}

	return res, nil
}

func (r *VenueRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Venue, error) {
	query := `SELECT ` + venueColumns + `, position
			  FROM venues
			  WHERE event_id = $1
			  ORDER BY position ASC`

	rows, err := r.query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list venues by event: %w", err)
	}
	defer rows.Close()

	res := make([]domain.Venue, 0)
	for rows.Next() {
		v, _, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		res = append(res, v)
	}

	return res, rows.Err()
}

// ListByEvents loads the venues of several events with one query, keyed by event id.
func (r *VenueRepository) ListByEvents(ctx context.Context, eventIDs []string) (map[string][]domain.Venue, error) {
	res := make(map[string][]domain.Venue, len(eventIDs))
	if len(eventIDs) == 0 {
		return res, nil
	}

	query := `SELECT ` + venueColumns + `, position
			  FROM venues
			  WHERE event_id = ANY($1::uuid[])
			  ORDER BY event_id, position ASC`

	rows, err := r.query(ctx, query, pq.Array(eventIDs))
	if err != nil {
		return nil, fmt.Errorf("list venues by events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		v, _, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		res[v.EventID] = append(res[v.EventID], v)
	}

	return res, rows.Err()
}

func (r *VenueRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	query := `DELETE FROM venues WHERE event_id = $1`

	if _, err := r.conn(ctx).ExecContext(ctx, query, eventID); err != nil {
		return fmt.Errorf("delete venues: %w", err)
	}

	return nil
}

func scanVenue(s scanner) (domain.Venue, int, error) {
	var v domain.Venue
	var addr sql.NullString
	var capacity sql.NullInt64
	var pos int
	if err := s.Scan(&v.ID, &v.EventID, &v.Name, &addr, &capacity, &v.CreatedAt, &pos); err != nil {
		return domain.Venue{}, 0, err
	}
	v.Address = stringPtr(addr)
	if capacity.Valid {
		c := int(capacity.Int64)
		v.Capacity = &c
	}

	return v, pos, nil
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}
