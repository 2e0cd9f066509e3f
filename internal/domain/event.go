package domain

import "time"

type SportType string

const (
	SportSoccer     SportType = "Soccer"
	SportBasketball SportType = "Basketball"
	SportTennis     SportType = "Tennis"
	SportBaseball   SportType = "Baseball"
	SportFootball   SportType = "Football"
	SportHockey     SportType = "Hockey"
	SportGolf       SportType = "Golf"
	SportSwimming   SportType = "Swimming"
	SportVolleyball SportType = "Volleyball"
	SportRugby      SportType = "Rugby"
	SportCricket    SportType = "Cricket"
	SportBoxing     SportType = "Boxing"
	SportMMA        SportType = "MMA"
	SportRunning    SportType = "Running"
	SportCycling    SportType = "Cycling"
	SportOther      SportType = "Other"
)

// SportTypes lists every accepted sport type in display order.
var SportTypes = []SportType{
	SportSoccer, SportBasketball, SportTennis, SportBaseball,
	SportFootball, SportHockey, SportGolf, SportSwimming,
	SportVolleyball, SportRugby, SportCricket, SportBoxing,
	SportMMA, SportRunning, SportCycling, SportOther,
}

// SportTypeAll is the filter value that disables sport type filtering.
const SportTypeAll = "all"

// ParseSportType returns the SportType named by s or a validation error
// when s is empty or outside the closed set.
func ParseSportType(s string) (SportType, error) {
	if s == "" {
		return "", NewValidationError("sport_type", "Sport type is required")
	}
	for _, st := range SportTypes {
		if string(st) == s {
			return st, nil
		}
	}
	return "", NewValidationError("sport_type", "Invalid sport type: "+s)
}

type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SportType   SportType `json:"sport_type"`
	DateTime    time.Time `json:"date_time"`
	Description *string   `json:"description,omitempty"`
	OwnerID     string    `json:"user_id"`
	Venues      []Venue   `json:"venues"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Venue struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	Capacity  *int      `json:"capacity,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EventForm is the raw, unvalidated input of create and update.
type EventForm struct {
	Name        string
	SportType   string
	DateTime    string
	Description *string
	Venues      []VenueForm
}

type VenueForm struct {
	Name     string
	Address  *string
	Capacity *int
}

// EventFilter narrows List. An empty SportType or SportTypeAll matches every sport.
type EventFilter struct {
	Search    string
	SportType string
}
