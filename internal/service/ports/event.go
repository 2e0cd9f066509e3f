package ports

import (
	"context"

	"github.com/domgiordano/sports-events/internal/domain"
)

// EventRepo is the owner-scoped accessor of the events table. Every method
// filters by owner, so a foreign event is reported as domain.ErrEventNotFound.
type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.Event, error)
	Exists(ctx context.Context, ownerID, id string) (bool, error)
	List(ctx context.Context, ownerID string, filter domain.EventFilter) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, ownerID, id string) error
}
