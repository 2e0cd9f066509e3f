package dto

import "github.com/domgiordano/sports-events/internal/domain"

type EventRequest struct {
	Name        string         `json:"name"`
	SportType   string         `json:"sport_type"`
	DateTime    string         `json:"date_time"`
	Description *string        `json:"description"`
	Venues      []VenueRequest `json:"venues"`
}

type VenueRequest struct {
	Name     string  `json:"name"`
	Address  *string `json:"address"`
	Capacity *int    `json:"capacity"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r EventRequest) ToForm() domain.EventForm {
	venues := make([]domain.VenueForm, 0, len(r.Venues))
	for _, v := range r.Venues {
		venues = append(venues, domain.VenueForm{
			Name:     v.Name,
			Address:  v.Address,
			Capacity: v.Capacity,
		})
	}

	return domain.EventForm{
		Name:        r.Name,
		SportType:   r.SportType,
		DateTime:    r.DateTime,
		Description: r.Description,
		Venues:      venues,
	}
}
