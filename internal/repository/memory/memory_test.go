package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetspace/internal/domain"
)

var (
	now    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sf     = orb.Point{-122.4194, 37.7749}
	future = now.Add(24 * time.Hour)
)

func newEvent(id string, pt orb.Point, startAt time.Time) *domain.Event {
	return &domain.Event{
		ID:           id,
		AgentID:      "agent-1",
		Title:        "event " + id,
		StartAt:      startAt,
		Timezone:     "America/Los_Angeles",
		LocationName: "somewhere",
		Lat:          pt.Lat(),
		Lng:          pt.Lon(),
		Audience:     domain.AudienceAll,
		EventType:    domain.EventTypeMeetup,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func ids(events []*domain.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestIdentityStore(t *testing.T) {
	t.Run("lookup and touch", func(t *testing.T) {
		ctx := context.Background()
		s := NewIdentityStore()

		a := domain.NewIdentity("a@b.com", "a", "hash-a", "ms_test_aaaaaaaa", now)
		b := domain.NewIdentity("b@b.com", "b", "hash-b", "ms_test_aaaaaaaa", now)
		c := domain.NewIdentity("c@b.com", "c", "hash-c", "ms_test_cccccccc", now)
		for _, id := range []*domain.Identity{a, b, c} {
			require.NoError(t, s.Create(ctx, id))
			assert.NotEmpty(t, id.ID)
		}
		require.Error(t, s.Create(ctx, a), "duplicate id")

		got, err := s.ListActiveByPrefix(ctx, "ms_test_aaaaaaaa")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"hash-a", "hash-b"}, []string{got[0].KeyHash, got[1].KeyHash})

		require.NoError(t, s.SetActive(b.ID, false))
		got, err = s.ListActiveByPrefix(ctx, "ms_test_aaaaaaaa")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, a.ID, got[0].ID)

		got, err = s.ListActiveByPrefix(ctx, "ms_test_zzzzzzzz")
		require.NoError(t, err)
		assert.Empty(t, got)

		touched := now.Add(time.Minute)
		require.NoError(t, s.TouchLastUsed(ctx, a.ID, touched))
		stored, err := s.Get(a.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.LastUsedAt)
		assert.True(t, touched.Equal(*stored.LastUsedAt))

		assert.ErrorIs(t, s.TouchLastUsed(ctx, "missing", touched), domain.ErrNotFound)
	})

	t.Run("returns copies", func(t *testing.T) {
		ctx := context.Background()
		s := NewIdentityStore()
		a := domain.NewIdentity("a@b.com", "a", "hash-a", "p", now)
		require.NoError(t, s.Create(ctx, a))

		got, err := s.ListActiveByPrefix(ctx, "p")
		require.NoError(t, err)
		got[0].Tier = domain.TierAdmin

		stored, err := s.Get(a.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TierReadWrite, stored.Tier)
	})
}

func TestEventStore_GetByID(t *testing.T) {
	ctx := context.Background()
	s := NewEventStore()
	require.NoError(t, s.Create(ctx, newEvent("01A", sf, future)))
	require.Error(t, s.Create(ctx, newEvent("01A", sf, future)), "duplicate id")

	got, err := s.GetByID(ctx, "01A")
	require.NoError(t, err)
	assert.Equal(t, "01A", got.ID)

	_, err = s.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventStore_FindNearby(t *testing.T) {
	t.Run("radius boundary", func(t *testing.T) {
		ctx := context.Background()
		radius := 0.1 * domain.MilesToMeters

		tests := []struct {
			name     string
			distance float64
			want     bool
		}{
			{"center", 0, true},
			{"inside", radius / 2, true},
			{"exactly on radius", radius, true},
			{"one meter beyond", radius + 1, false},
			{"far away", 50 * domain.MilesToMeters, false},
		}
		for _, bearing := range []float64{0, 45, 90, 180, 270} {
			for _, tt := range tests {
				t.Run(fmt.Sprintf("%s bearing %v", tt.name, bearing), func(t *testing.T) {
					s := NewEventStore()
					pt := geo.PointAtBearingAndDistance(sf, bearing, tt.distance)
					require.NoError(t, s.Create(ctx, newEvent("01A", pt, future)))

					got, err := s.FindNearby(ctx, domain.NearbyQuery{
						Lat: sf.Lat(), Lng: sf.Lon(), RadiusMeters: radius, MinStart: now, Limit: 10,
					})
					require.NoError(t, err)
					assert.Equal(t, tt.want, len(got) == 1)
				})
			}
		}
	})

	t.Run("filters and orders", func(t *testing.T) {
		ctx := context.Background()
		s := NewEventStore()
		near := geo.PointAtBearingAndDistance(sf, 30, 50)

		require.NoError(t, s.Create(ctx, newEvent("01C", near, future)))
		require.NoError(t, s.Create(ctx, newEvent("01A", sf, future)))
		require.NoError(t, s.Create(ctx, newEvent("01B", sf, now.Add(-time.Second))))
		require.NoError(t, s.Create(ctx, newEvent("01D", sf, now)))
		require.NoError(t, s.Create(ctx, newEvent("01E", orb.Point{0, 0}, future)))

		q := domain.NearbyQuery{Lat: sf.Lat(), Lng: sf.Lon(), RadiusMeters: 1000, MinStart: now, Limit: 10}
		got, err := s.FindNearby(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, []string{"01A", "01C", "01D"}, ids(got), "past events excluded, start == now kept, ordered by id")

		q.After = "01A"
		got, err = s.FindNearby(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, []string{"01C", "01D"}, ids(got))

		q.After = ""
		q.Limit = 1
		got, err = s.FindNearby(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, []string{"01A", "01C"}, ids(got), "limit+1 rows")
	})

	t.Run("antimeridian", func(t *testing.T) {
		ctx := context.Background()
		s := NewEventStore()
		east := orb.Point{179.9999, 0}
		west := orb.Point{-179.9999, 0}
		require.NoError(t, s.Create(ctx, newEvent("01A", west, future)))

		got, err := s.FindNearby(ctx, domain.NearbyQuery{
			Lat: east.Lat(), Lng: east.Lon(), RadiusMeters: 100, MinStart: now, Limit: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"01A"}, ids(got))
	})
}

