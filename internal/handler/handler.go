package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/domgiordano/sports-events/internal/domain"
	"github.com/domgiordano/sports-events/internal/handler/dto"
	"github.com/domgiordano/sports-events/internal/identity"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	List(ctx context.Context, ownerID string, filter domain.EventFilter) ([]*domain.Event, error)
	GetByID(ctx context.Context, ownerID, eventID string) (*domain.Event, error)
	Create(ctx context.Context, ownerID string, form domain.EventForm) (*domain.Event, error)
	Update(ctx context.Context, ownerID, eventID string, form domain.EventForm) (*domain.Event, error)
	Delete(ctx context.Context, ownerID, eventID string) error
}

type AuthSvc interface {
	SignUp(ctx context.Context, email, password string) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, id *domain.Identity) error
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

type Handler struct {
	eventService EventSvc
	authService  AuthSvc
}

func NewHandler(eventService EventSvc, authService AuthSvc) *Handler {
	return &Handler{
		eventService: eventService,
		authService:  authService,
	}
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.EventFilter{
		Search:    c.Query("search"),
		SportType: c.Query("sport"),
	}

	events, err := h.eventService.List(c.Request.Context(), identity.UserID(c.Request.Context()), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), identity.UserID(c.Request.Context()), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToEventResponse(event)))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), identity.UserID(c.Request.Context()), req.ToForm())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToEventResponse(event)))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), identity.UserID(c.Request.Context()), id, req.ToForm())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToEventResponse(event)))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), identity.UserID(c.Request.Context()), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(nil))
}

// Auth

func (h *Handler) SignUp(c *ginext.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToUserResponse(user)))
}

func (h *Handler) SignIn(c *ginext.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	session, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToSessionResponse(session)))
}

func (h *Handler) SignOut(c *ginext.Context) {
	id, ok := identity.FromContext(c.Request.Context())
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	if err := h.authService.SignOut(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(nil))
}

func (h *Handler) Me(c *ginext.Context) {
	user, err := h.authService.CurrentUser(c.Request.Context(), identity.UserID(c.Request.Context()))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user)))
}

func eventID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid event id"))
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var validationErr *domain.ValidationError
	var storageErr *domain.StorageError

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))

	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.Fail(validationErr.Message))

	case errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.Fail("Event not found"))

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Fail(err.Error()))

	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.Fail(err.Error()))

	case errors.Is(err, domain.ErrTooManyAttempts):
		c.JSON(http.StatusTooManyRequests, dto.Fail(err.Error()))

	case errors.As(err, &storageErr):
		c.JSON(http.StatusInternalServerError, dto.Fail(storageErr.Message()))

	default:
		c.JSON(http.StatusInternalServerError, dto.Fail("internal server error"))
	}
}
