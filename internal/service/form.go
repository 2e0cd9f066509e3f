package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/domgiordano/sports-events/internal/domain"
)

// normalizedForm is an EventForm that passed validation.
type normalizedForm struct {
	name        string
	sportType   domain.SportType
	dateTime    time.Time
	description *string
	venues      []domain.Venue
}

// normalizeForm validates f in a fixed field order so the first failing
// field always produces the same message.
func normalizeForm(f domain.EventForm) (*normalizedForm, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "Event name is required")
	}

	sportType, err := domain.ParseSportType(strings.TrimSpace(f.SportType))
	if err != nil {
		return nil, err
	}

	rawDate := strings.TrimSpace(f.DateTime)
	if rawDate == "" {
		return nil, domain.NewValidationError("date_time", "Date and time are required")
	}
	dateTime, err := time.Parse(time.RFC3339, rawDate)
	if err != nil {
		return nil, domain.NewValidationError("date_time", "Date and time must be an ISO-8601 timestamp")
	}

	if len(f.Venues) == 0 {
		return nil, domain.NewValidationError("venues", "At least one venue is required")
	}

	venues := make([]domain.Venue, 0, len(f.Venues))
	for i, v := range f.Venues {
		venueName := strings.TrimSpace(v.Name)
		if venueName == "" {
			return nil, domain.NewValidationError(
				fmt.Sprintf("venues[%d].name", i),
				fmt.Sprintf("Venue %d: name is required", i+1),
			)
		}
		if v.Capacity != nil && *v.Capacity < 0 {
			return nil, domain.NewValidationError(
				fmt.Sprintf("venues[%d].capacity", i),
				fmt.Sprintf("Venue %d: capacity must not be negative", i+1),
			)
		}
		if v.Capacity != nil && *v.Capacity > math.MaxInt32 {
			return nil, domain.NewValidationError(
				fmt.Sprintf("venues[%d].capacity", i),
				fmt.Sprintf("Venue %d: capacity must not exceed %d", i+1, math.MaxInt32),
			)
		}
		venues = append(venues, domain.Venue{
			Name:     venueName,
			Address:  trimmedOrNil(v.Address),
			Capacity: v.Capacity,
		})
	}

	return &normalizedForm{
		name:        name,
		sportType:   sportType,
		dateTime:    dateTime.UTC(),
		description: trimmedOrNil(f.Description),
		venues:      venues,
	}, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
