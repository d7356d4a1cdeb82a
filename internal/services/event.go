package services

import (
	"context"
	"fmt"
	"math"

	"meetspace/internal/clock"
	"meetspace/internal/domain"
)

type eventService struct {
	repo  domain.EventRepository
	ids   domain.EventIDGenerator
	clock clock.Clock
}

// NewEventService creates an EventService with the given repository, id generator and clock.
func NewEventService(repo domain.EventRepository, ids domain.EventIDGenerator, clk clock.Clock) domain.EventService {
	return &eventService{repo: repo, ids: ids, clock: clk}
}

func (s *eventService) Create(ctx context.Context, agentID string, in domain.EventInput) (*domain.Event, error) {
	if err := domain.NewValidationError(in.Validate()); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	id, err := s.ids.NewID(now)
	if err != nil {
		return nil, fmt.Errorf("failed to assign event id: %w", err)
	}
	event := domain.NewEvent(id, agentID, in, now)
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func validateNearby(lat, lng, radiusMiles float64, limit int) []string {
	var problems []string
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		problems = append(problems, "lat must be between -90 and 90")
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		problems = append(problems, "lng must be between -180 and 180")
	}
	if math.IsNaN(radiusMiles) || radiusMiles < domain.MinRadiusMiles || radiusMiles > domain.MaxRadiusMiles {
		problems = append(problems, fmt.Sprintf("radius must be between %g and %g miles", domain.MinRadiusMiles, float64(domain.MaxRadiusMiles)))
	}
	if limit < 0 || limit > domain.MaxPageSize {
		problems = append(problems, fmt.Sprintf("limit must be between 1 and %d", domain.MaxPageSize))
	}
	return problems
}

// Nearby returns one page of upcoming events within radiusMiles of (lat, lng),
// ordered by event id. A zero limit selects the default page size.
func (s *eventService) Nearby(ctx context.Context, lat, lng, radiusMiles float64, cursor string, limit int) (*domain.EventPage, error) {
	if err := domain.NewValidationError(validateNearby(lat, lng, radiusMiles, limit)); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = domain.DefaultPageSize
	}
	rows, err := s.repo.FindNearby(ctx, domain.NearbyQuery{
		Lat:          lat,
		Lng:          lng,
		RadiusMeters: radiusMiles * domain.MilesToMeters,
		MinStart:     s.clock.Now(),
		After:        cursor,
		Limit:        limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby events: %w", err)
	}
	return domain.NewEventPage(rows, limit), nil
}
