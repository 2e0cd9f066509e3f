package dto

import (
	"time"

	"github.com/domgiordano/sports-events/internal/domain"
)

// Result is the envelope of every response: either ok with a value or not
// ok with a message meant to be shown as is.
type Result struct {
	OK      bool   `json:"ok"`
	Value   any    `json:"value,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(value any) Result {
	return Result{OK: true, Value: value}
}

func Fail(message string) Result {
	return Result{OK: false, Message: message}
}

type EventResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SportType   string          `json:"sport_type"`
	DateTime    string          `json:"date_time"`
	Description *string         `json:"description,omitempty"`
	UserID      string          `json:"user_id"`
	Venues      []VenueResponse `json:"venues"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type VenueResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  *string `json:"address,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type SessionResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresAt string `json:"expires_at"`
	UserID    string `json:"user_id"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	venues := make([]VenueResponse, 0, len(e.Venues))
	for _, v := range e.Venues {
		venues = append(venues, VenueResponse{
			ID:       v.ID,
			Name:     v.Name,
			Address:  v.Address,
			Capacity: v.Capacity,
		})
	}

	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		SportType:   string(e.SportType),
		DateTime:    e.DateTime.Format(time.RFC3339),
		Description: e.Description,
		UserID:      e.OwnerID,
		Venues:      venues,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		TokenType: "Bearer",
		ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
		UserID:    s.UserID,
	}
}
