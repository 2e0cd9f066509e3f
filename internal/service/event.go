package service

import (
	"context"
	"errors"
	"time"

	"github.com/domgiordano/sports-events/internal/domain"
	"github.com/domgiordano/sports-events/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	opList   = "list"
	opGet    = "get"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// EventService composes the events and venues tables into events-with-venues.
// The owner id is always passed in by the caller; an empty one means the
// caller is not authenticated.
type EventService struct {
	events  ports.EventRepo
	venues  ports.VenueRepo
	tx      ports.Transactor
	metrics ports.OperationRecorder
	logger  logger.Logger
	now     func() time.Time
}

func NewEventService(
	events ports.EventRepo,
	venues ports.VenueRepo,
	tx ports.Transactor,
	metrics ports.OperationRecorder,
	logger logger.Logger,
) *EventService {
	return &EventService{
		events:  events,
		venues:  venues,
		tx:      tx,
		metrics: metrics,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *EventService) List(ctx context.Context, ownerID string, filter domain.EventFilter) (res []*domain.Event, err error) {
	defer func() { s.metrics.ObserveOperation(opList, err) }()

	if ownerID == "" {
		return nil, domain.ErrUnauthenticated
	}

	events, err := s.events.List(ctx, ownerID, filter)
	if err != nil {
		return nil, domain.NewStorageError("list events", err)
	}
	if len(events) == 0 {
		return []*domain.Event{}, nil
	}

	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}

	byEvent, err := s.venues.ListByEvents(ctx, ids)
	if err != nil {
		return nil, domain.NewStorageError("list venues", err)
	}
	for _, e := range events {
		e.Venues = byEvent[e.ID]
		if e.Venues == nil {
			e.Venues = []domain.Venue{}
		}
	}

	return events, nil
}

func (s *EventService) GetByID(ctx context.Context, ownerID, eventID string) (res *domain.Event, err error) {
	defer func() { s.metrics.ObserveOperation(opGet, err) }()

	if ownerID == "" {
		return nil, domain.ErrUnauthenticated
	}

	event, err := s.events.GetByID(ctx, ownerID, eventID)
	if err != nil {
		return nil, repoError("get event", err)
	}

	venues, err := s.venues.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, domain.NewStorageError("list venues", err)
	}
	event.Venues = venues

	return event, nil
}

// Create inserts the event and then its venues. When the venue insert fails
// the event is removed again on a best-effort basis and the venue error is
// returned; a crash between the two steps can still leave an event without
// venues.
func (s *EventService) Create(ctx context.Context, ownerID string, form domain.EventForm) (res *domain.Event, err error) {
	defer func() { s.metrics.ObserveOperation(opCreate, err) }()

	if ownerID == "" {
		return nil, domain.ErrUnauthenticated
	}

	in, err := normalizeForm(form)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		Name:        in.name,
		SportType:   in.sportType,
		DateTime:    in.dateTime,
		Description: in.description,
		OwnerID:     ownerID,
	}

	inserted := false
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.events.Create(ctx, event); err != nil {
			return domain.NewStorageError("create event", err)
		}
		inserted = true

		venues, err := s.venues.CreateBatch(ctx, event.ID, in.venues)
		if err != nil {
			return domain.NewStorageError("create venues", err)
		}
		event.Venues = venues
		return nil
	})
	if err != nil {
		err = txError(err)
		if inserted {
			s.compensateCreate(ctx, ownerID, event.ID, err)
		}
		return nil, err
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "event created",
		logger.String("event_id", event.ID),
		logger.String("owner_id", ownerID),
		logger.Int("venues", len(event.Venues)),
	)

	return event, nil
}

// compensateCreate deletes an event whose venues could not be stored. Its
// own failure is only logged so the caller sees the original error.
func (s *EventService) compensateCreate(ctx context.Context, ownerID, eventID string, cause error) {
	ctx = context.WithoutCancel(ctx)

	err := s.events.Delete(ctx, ownerID, eventID)
	switch {
	case err == nil:
		s.metrics.ObserveCompensation(true)
		s.logger.LogAttrs(ctx, logger.WarnLevel, "event rolled back after venue failure",
			logger.String("event_id", eventID),
			logger.String("cause", cause.Error()),
		)
	case errors.Is(err, domain.ErrEventNotFound):
		// already gone with the aborted transaction
		s.logger.LogAttrs(ctx, logger.DebugLevel, "nothing to roll back",
			logger.String("event_id", eventID),
		)
	default:
		s.metrics.ObserveCompensation(false)
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "event rollback failed, event left without venues",
			logger.String("event_id", eventID),
			logger.String("cause", cause.Error()),
			logger.String("error", err.Error()),
		)
	}
}

// Update rewrites the mutable fields and replaces the venue set wholesale.
// There is no compensation here: if the venue insert fails after the old
// venues were deleted, the event is left with none unless the transactor
// provides atomicity.
func (s *EventService) Update(ctx context.Context, ownerID, eventID string, form domain.EventForm) (res *domain.Event, err error) {
	defer func() { s.metrics.ObserveOperation(opUpdate, err) }()

	if ownerID == "" {
		return nil, domain.ErrUnauthenticated
	}

	in, err := normalizeForm(form)
	if err != nil {
		return nil, err
	}

	if err = s.ensureOwned(ctx, ownerID, eventID); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:          eventID,
		Name:        in.name,
		SportType:   in.sportType,
		DateTime:    in.dateTime,
		Description: in.description,
		OwnerID:     ownerID,
		UpdatedAt:   s.now(),
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.events.Update(ctx, event); err != nil {
			return repoError("update event", err)
		}
		if err := s.venues.DeleteByEvent(ctx, eventID); err != nil {
			return domain.NewStorageError("delete venues", err)
		}
		venues, err := s.venues.CreateBatch(ctx, eventID, in.venues)
		if err != nil {
			return domain.NewStorageError("create venues", err)
		}
		event.Venues = venues
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "event updated",
		logger.String("event_id", eventID),
		logger.String("owner_id", ownerID),
		logger.Int("venues", len(event.Venues)),
	)

	return event, nil
}

// Delete removes the venues and then the event.
func (s *EventService) Delete(ctx context.Context, ownerID, eventID string) (err error) {
	defer func() { s.metrics.ObserveOperation(opDelete, err) }()

	if ownerID == "" {
		return domain.ErrUnauthenticated
	}

	if err = s.ensureOwned(ctx, ownerID, eventID); err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.venues.DeleteByEvent(ctx, eventID); err != nil {
			return domain.NewStorageError("delete venues", err)
		}
		if err := s.events.Delete(ctx, ownerID, eventID); err != nil {
			return repoError("delete event", err)
		}
		return nil
	})
	if err != nil {
		return txError(err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "event deleted",
		logger.String("event_id", eventID),
		logger.String("owner_id", ownerID),
	)

	return nil
}

func (s *EventService) ensureOwned(ctx context.Context, ownerID, eventID string) error {
	ok, err := s.events.Exists(ctx, ownerID, eventID)
	if err != nil {
		return domain.NewStorageError("check event", err)
	}
	if !ok {
		return domain.ErrEventNotFound
	}
	return nil
}

// repoError passes not-found through untouched and wraps everything else.
func repoError(op string, err error) error {
	if errors.Is(err, domain.ErrEventNotFound) {
		return domain.ErrEventNotFound
	}
	return domain.NewStorageError(op, err)
}

// txError keeps typed errors from inside a unit of work and wraps failures
// of the transaction itself (begin, commit).
func txError(err error) error {
	if errors.Is(err, domain.ErrStorage) || errors.Is(err, domain.ErrEventNotFound) {
		return err
	}
	return domain.NewStorageError("save changes", err)
}
