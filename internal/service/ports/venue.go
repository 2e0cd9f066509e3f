package ports

import (
	"context"

	"github.com/domgiordano/sports-events/internal/domain"
)

type VenueRepo interface {
	CreateBatch(ctx context.Context, eventID string, venues []domain.Venue) ([]domain.Venue, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Venue, error)
	ListByEvents(ctx context.Context, eventIDs []string) (map[string][]domain.Venue, error)
	DeleteByEvent(ctx context.Context, eventID string) error
}
