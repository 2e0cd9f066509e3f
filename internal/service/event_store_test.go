package service

import (
	"context"
	"testing"

	"github.com/domgiordano/sports-events/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreService(t *testing.T) (*EventService, *memStore) {
	t.Helper()
	store := newMemStore()
	svc := NewEventService(store, memVenues{store}, &inlineTx{}, &fakeRecorder{}, newTestLogger(t))
	return svc, store
}

func formAt(name, sport, when string, venues ...string) domain.EventForm {
	f := domain.EventForm{Name: name, SportType: sport, DateTime: when}
	for _, v := range venues {
		f.Venues = append(f.Venues, domain.VenueForm{Name: v})
	}
	return f
}

func TestEventStore_OwnershipIsolation(t *testing.T) {
	svc, _ := newStoreService(t)
	ctx := context.Background()

	mine, err := svc.Create(ctx, "alice", formAt("Final", "Tennis", "2030-01-01T10:00:00Z", "Court 1"))
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, "bob", mine.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	_, err = svc.Update(ctx, "bob", mine.ID, formAt("Hijacked", "Golf", "2030-01-01T10:00:00Z", "Green"))
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	err = svc.Delete(ctx, "bob", mine.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	bobs, err := svc.List(ctx, "bob", domain.EventFilter{})
	require.NoError(t, err)
	assert.Empty(t, bobs)

	got, err := svc.GetByID(ctx, "alice", mine.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Name)
	assert.Equal(t, []string{"Court 1"}, venueNames(got.Venues))
}

func TestEventStore_RoundTrip(t *testing.T) {
	svc, _ := newStoreService(t)
	ctx := context.Background()

	form := validForm()
	created, err := svc.Create(ctx, "alice", form)
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, "alice", created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Derby", got.Name)
	assert.Equal(t, domain.SportSoccer, got.SportType)
	assert.Equal(t, "local rivals", *got.Description)
	assert.Equal(t, []string{"Main Stadium", "Fan Zone"}, venueNames(got.Venues))
	assert.Nil(t, got.Venues[1].Address)
	assert.True(t, got.DateTime.Equal(created.DateTime))
}

func TestEventStore_ListFilterAndOrder(t *testing.T) {
	svc, _ := newStoreService(t)
	ctx := context.Background()

	for _, f := range []domain.EventForm{
		formAt("Summer Cup", "Soccer", "2030-07-01T10:00:00Z", "A"),
		formAt("Spring Cup", "Tennis", "2030-04-01T10:00:00Z", "B"),
		formAt("Winter Classic", "Hockey", "2030-01-01T10:00:00Z", "C"),
	} {
		_, err := svc.Create(ctx, "alice", f)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, "alice", domain.EventFilter{SportType: domain.SportTypeAll})
	require.NoError(t, err)
	assert.Equal(t, []string{"Winter Classic", "Spring Cup", "Summer Cup"}, eventNames(all))

	cups, err := svc.List(ctx, "alice", domain.EventFilter{Search: "CUP"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Spring Cup", "Summer Cup"}, eventNames(cups))

	soccerCups, err := svc.List(ctx, "alice", domain.EventFilter{Search: "cup", SportType: "Soccer"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Summer Cup"}, eventNames(soccerCups))
	assert.Equal(t, []string{"A"}, venueNames(soccerCups[0].Venues))
}

func TestEventStore_SearchKeepsWhitespace(t *testing.T) {
	svc, _ := newStoreService(t)
	ctx := context.Background()

	for _, f := range []domain.EventForm{
		formAt("Cupcake Run", "Running", "2030-02-01T10:00:00Z", "A"),
		formAt("World Cup", "Soccer", "2030-03-01T10:00:00Z", "B"),
	} {
		_, err := svc.Create(ctx, "alice", f)
		require.NoError(t, err)
	}

	got, err := svc.List(ctx, "alice", domain.EventFilter{Search: " cup"})
	require.NoError(t, err)
	assert.Equal(t, []string{"World Cup"}, eventNames(got))
}

func TestEventStore_DeleteIsFinal(t *testing.T) {
	svc, store := newStoreService(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, "alice", formAt("Race", "Running", "2030-03-01T08:00:00Z", "Start", "Finish"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "alice", e.ID))

	_, err = svc.GetByID(ctx, "alice", e.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "alice", e.ID), domain.ErrEventNotFound)
	assert.Empty(t, store.venues[e.ID])
}

func TestEventStore_UpdateReplacesVenuesWholesale(t *testing.T) {
	svc, _ := newStoreService(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, "alice", formAt("Tour", "Cycling", "2030-06-01T08:00:00Z", "Stage 1", "Stage 2"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, "alice", e.ID, formAt("Tour", "Cycling", "2030-06-01T08:00:00Z", "Stage 3"))
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, "alice", e.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Stage 3"}, venueNames(got.Venues))
}

func TestEventStore_VenueFailureLeavesNoEvent(t *testing.T) {
	svc, store := newStoreService(t)
	ctx := context.Background()
	store.failVenueInsert = true

	_, err := svc.Create(ctx, "alice", formAt("Bout", "Boxing", "2030-02-01T20:00:00Z", "Arena"))
	require.ErrorIs(t, err, domain.ErrStorage)

	events, err := svc.List(ctx, "alice", domain.EventFilter{})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventStore_UpdateInsertFailureLeavesZeroVenues(t *testing.T) {
	svc, store := newStoreService(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, "alice", formAt("Open", "Golf", "2030-08-01T08:00:00Z", "Course"))
	require.NoError(t, err)

	store.failVenueInsert = true
	_, err = svc.Update(ctx, "alice", e.ID, formAt("Open", "Golf", "2030-08-01T08:00:00Z", "New Course"))
	require.ErrorIs(t, err, domain.ErrStorage)

	got, err := svc.GetByID(ctx, "alice", e.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Venues)
}

func eventNames(events []*domain.Event) []string {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.Name
	}
	return names
}

func venueNames(venues []domain.Venue) []string {
	names := make([]string, len(venues))
	for i, v := range venues {
		names[i] = v.Name
	}
	return names
}
