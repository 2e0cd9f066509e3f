package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/domgiordano/sports-events/internal/domain"
)

// memStore is an in-memory events/venues store with the same owner scoping
// as the postgres repositories.
type memStore struct {
	mu     sync.Mutex
	seq    int
	events map[string]domain.Event
	venues map[string][]domain.Venue

	failVenueInsert bool
}

func newMemStore() *memStore {
	return &memStore{
		events: make(map[string]domain.Event),
		venues: make(map[string][]domain.Venue),
	}
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s%d", prefix, m.seq)
}

func (m *memStore) Create(_ context.Context, e *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = m.nextID("e")
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = e.CreatedAt
	stored := *e
	stored.Venues = nil
	m.events[e.ID] = stored
	return nil
}

func (m *memStore) GetByID(_ context.Context, ownerID, id string) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[id]
	if !ok || e.OwnerID != ownerID {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (m *memStore) Exists(ctx context.Context, ownerID, id string) (bool, error) {
	_, err := m.GetByID(ctx, ownerID, id)
	return err == nil, nil
}

func (m *memStore) List(_ context.Context, ownerID string, filter domain.EventFilter) ([]*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	search := strings.ToLower(filter.Search)
	var out []*domain.Event
	for _, e := range m.events {
		if e.OwnerID != ownerID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Name), search) {
			continue
		}
		if filter.SportType != "" && filter.SportType != domain.SportTypeAll && string(e.SportType) != filter.SportType {
			continue
		}
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.Before(out[j].DateTime) })
	return out, nil
}

func (m *memStore) Update(_ context.Context, e *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.events[e.ID]
	if !ok || cur.OwnerID != e.OwnerID {
		return domain.ErrEventNotFound
	}
	cur.Name = e.Name
	cur.SportType = e.SportType
	cur.DateTime = e.DateTime
	cur.Description = e.Description
	cur.UpdatedAt = e.UpdatedAt
	m.events[e.ID] = cur
	e.CreatedAt = cur.CreatedAt
	return nil
}

func (m *memStore) Delete(_ context.Context, ownerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[id]
	if !ok || e.OwnerID != ownerID {
		return domain.ErrEventNotFound
	}
	delete(m.events, id)
	return nil
}

// memVenues exposes the venue half of memStore under the VenueRepo method set.
type memVenues struct{ *memStore }

func (v memVenues) CreateBatch(_ context.Context, eventID string, venues []domain.Venue) ([]domain.Venue, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.failVenueInsert {
		return nil, fmt.Errorf("venue insert rejected")
	}
	out := make([]domain.Venue, len(venues))
	for i, venue := range venues {
		venue.ID = v.nextID("v")
		venue.EventID = eventID
		out[i] = venue
	}
	v.venues[eventID] = append(v.venues[eventID], out...)
	return out, nil
}

func (v memVenues) ListByEvent(_ context.Context, eventID string) ([]domain.Venue, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return append([]domain.Venue{}, v.venues[eventID]...), nil
}

func (v memVenues) ListByEvents(_ context.Context, eventIDs []string) (map[string][]domain.Venue, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make(map[string][]domain.Venue, len(eventIDs))
	for _, id := range eventIDs {
		if venues, ok := v.venues[id]; ok {
			out[id] = append([]domain.Venue{}, venues...)
		}
	}
	return out, nil
}

func (v memVenues) DeleteByEvent(_ context.Context, eventID string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.venues, eventID)
	return nil
}
