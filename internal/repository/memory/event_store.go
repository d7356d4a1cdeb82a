package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/quadtree"

	"meetspace/internal/domain"
)

// boundaryToleranceMeters absorbs float rounding so a point placed exactly on
// the search circle is still inside it.
const boundaryToleranceMeters = 1e-3

var world = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

type indexedEvent struct {
	id string
	pt orb.Point
}

func (e *indexedEvent) Point() orb.Point { return e.pt }

// EventStore is a thread-safe in-memory domain.EventRepository with a quadtree
// over event coordinates.
type EventStore struct {
	mu     sync.RWMutex
	events map[string]*domain.Event
	index  *quadtree.Quadtree
}

// NewEventStore returns an empty store.
func NewEventStore() *EventStore {
	return &EventStore{
		events: make(map[string]*domain.Event),
		index:  quadtree.New(world),
	}
}

func (s *EventStore) Create(_ context.Context, event *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[event.ID]; exists {
		return fmt.Errorf("event %s already exists", event.ID)
	}
	if err := s.index.Add(&indexedEvent{id: event.ID, pt: orb.Point{event.Lng, event.Lat}}); err != nil {
		return fmt.Errorf("index event %s: %w", event.ID, err)
	}
	cp := *event
	s.events[cp.ID] = &cp
	return nil
}

func (s *EventStore) GetByID(_ context.Context, id string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *stored
	return &cp, nil
}

// FindNearby uses the quadtree for candidates and the haversine distance as the
// exact predicate. The radius boundary is inclusive.
func (s *EventStore) FindNearby(_ context.Context, q domain.NearbyQuery) ([]*domain.Event, error) {
	center := orb.Point{q.Lng, q.Lat}
	bound := searchBound(center, q.RadiusMeters)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Event
	for _, p := range s.index.InBound(nil, bound) {
		ie := p.(*indexedEvent)
		if q.After != "" && ie.id <= q.After {
			continue
		}
		ev := s.events[ie.id]
		if ev.StartAt.Before(q.MinStart) {
			continue
		}
		if geo.DistanceHaversine(center, ie.pt) > q.RadiusMeters+boundaryToleranceMeters {
			continue
		}
		cp := *ev
		out = append(out, &cp)
	}

	slices.SortFunc(out, func(a, b *domain.Event) int { return strings.Compare(a.ID, b.ID) })
	if q.Limit > 0 && len(out) > q.Limit+1 {
		out = out[:q.Limit+1]
	}
	return out, nil
}

// searchBound returns a lon/lat box containing the search circle. Circles that
// wrap the antimeridian or reach a pole search the whole world.
func searchBound(center orb.Point, radiusMeters float64) orb.Bound {
	b := geo.NewBoundAroundPoint(center, radiusMeters+boundaryToleranceMeters).Pad(1e-9)
	if b.Min[0] > b.Max[0] || b.Min[0] < -180 || b.Max[0] > 180 || b.Min[1] < -90 || b.Max[1] > 90 {
		return world
	}
	return b
}
