package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Audience is the intended audience of an event.
type Audience string

const (
	AudienceKids   Audience = "kids"
	AudienceAdults Audience = "adults"
	AudienceAll    Audience = "all"
)

// Audiences lists every accepted Audience value.
var Audiences = []Audience{AudienceKids, AudienceAdults, AudienceAll}

// Valid reports whether a is a known audience.
func (a Audience) Valid() bool {
	for _, v := range Audiences {
		if a == v {
			return true
		}
	}
	return false
}

// EventType classifies what kind of gathering an event is.
type EventType string

const (
	EventTypeWorkshop    EventType = "workshop"
	EventTypePerformance EventType = "performance"
	EventTypeFestival    EventType = "festival"
	EventTypeMarket      EventType = "market"
	EventTypeCompetition EventType = "competition"
	EventTypeGame        EventType = "game"
	EventTypeSocial      EventType = "social"
	EventTypeMeetup      EventType = "meetup"
	EventTypeClub        EventType = "club"
	EventTypeSupport     EventType = "support"
	EventTypeTalk        EventType = "talk"
	EventTypeConference  EventType = "conference"
	EventTypeExhibition  EventType = "exhibition"
	EventTypeTour        EventType = "tour"
	EventTypeCeremony    EventType = "ceremony"
)

// EventTypes lists every accepted EventType value.
var EventTypes = []EventType{
	EventTypeWorkshop, EventTypePerformance, EventTypeFestival, EventTypeMarket,
	EventTypeCompetition, EventTypeGame, EventTypeSocial, EventTypeMeetup,
	EventTypeClub, EventTypeSupport, EventTypeTalk, EventTypeConference,
	EventTypeExhibition, EventTypeTour, EventTypeCeremony,
}

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	for _, v := range EventTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Event is a real-world event published by an agent.
// swagger:model Event
type Event struct {
	ID           string           `json:"event_id"`
	AgentID      string           `json:"agent_id"`
	Title        string           `json:"title"`
	Description  *string          `json:"description"`
	StartAt      time.Time        `json:"start_at"`
	EndAt        *time.Time       `json:"end_at"`
	Timezone     string           `json:"timezone"`
	LocationName string           `json:"location_name"`
	Address      *string          `json:"address"`
	Lat          float64          `json:"lat"`
	Lng          float64          `json:"lng"`
	URL          *string          `json:"url"`
	Price        *decimal.Decimal `json:"price"`
	Currency     *string          `json:"currency"`
	Audience     Audience         `json:"audience"`
	EventType    EventType        `json:"event_type"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"-"`
}

// Field limits for event input.
const (
	MaxTitleLen        = 200
	MaxDescriptionLen  = 10000
	MaxLocationNameLen = 200
	MaxAddressLen      = 500
	MaxURLLen          = 2000
)

var currencyRegexp = regexp.MustCompile(`^[A-Z]{3}$`)

// EventInput is the caller-supplied part of a new event.
type EventInput struct {
	Title        string           `json:"title"`
	Description  *string          `json:"description"`
	StartAt      time.Time        `json:"start_at"`
	EndAt        *time.Time       `json:"end_at"`
	Timezone     string           `json:"timezone"`
	LocationName string           `json:"location_name"`
	Address      *string          `json:"address"`
	Lat          float64          `json:"lat"`
	Lng          float64          `json:"lng"`
	URL          *string          `json:"url"`
	Price        *decimal.Decimal `json:"price"`
	Currency     *string          `json:"currency"`
	Audience     Audience         `json:"audience"`
	EventType    EventType        `json:"event_type"`
}

// Validate returns one message per violated rule; nil means valid.
func (in EventInput) Validate() []string {
	var errs []string
	if n := len([]rune(in.Title)); n == 0 {
		errs = append(errs, "title is required")
	} else if n > MaxTitleLen {
		errs = append(errs, fmt.Sprintf("title must be at most %d characters", MaxTitleLen))
	}
	if in.Description != nil && len([]rune(*in.Description)) > MaxDescriptionLen {
		errs = append(errs, fmt.Sprintf("description must be at most %d characters", MaxDescriptionLen))
	}
	if in.StartAt.IsZero() {
		errs = append(errs, "start_at is required")
	}
	if in.Timezone == "" {
		errs = append(errs, "timezone is required")
	} else if _, err := time.LoadLocation(in.Timezone); err != nil || strings.EqualFold(in.Timezone, "local") {
		errs = append(errs, "timezone must be an IANA timezone name")
	}
	if n := len([]rune(in.LocationName)); n == 0 {
		errs = append(errs, "location_name is required")
	} else if n > MaxLocationNameLen {
		errs = append(errs, fmt.Sprintf("location_name must be at most %d characters", MaxLocationNameLen))
	}
	if in.Address != nil && len([]rune(*in.Address)) > MaxAddressLen {
		errs = append(errs, fmt.Sprintf("address must be at most %d characters", MaxAddressLen))
	}
	if in.Lat < -90 || in.Lat > 90 {
		errs = append(errs, "lat must be between -90 and 90")
	}
	if in.Lng < -180 || in.Lng > 180 {
		errs = append(errs, "lng must be between -180 and 180")
	}
	if in.URL != nil && len(*in.URL) > MaxURLLen {
		errs = append(errs, fmt.Sprintf("url must be at most %d characters", MaxURLLen))
	}
	if in.Price != nil && in.Price.IsNegative() {
		errs = append(errs, "price must be greater than or equal to 0")
	}
	if in.Currency != nil && !currencyRegexp.MatchString(*in.Currency) {
		errs = append(errs, "currency must be a 3-letter ISO 4217 code")
	}
	if in.Price != nil && in.Currency == nil {
		errs = append(errs, "currency is required when price is present")
	}
	if !in.Audience.Valid() {
		errs = append(errs, fmt.Sprintf("audience must be one of %v", Audiences))
	}
	if !in.EventType.Valid() {
		errs = append(errs, fmt.Sprintf("event_type must be one of %v", EventTypes))
	}
	return errs
}

// NewEvent builds an Event owned by agentID from in. Description is stored
// with markup removed.
func NewEvent(id, agentID string, in EventInput, createdAt time.Time) *Event {
	desc := in.Description
	if desc != nil {
		s := StripHTML(*desc)
		desc = &s
	}
	return &Event{
		ID:           id,
		AgentID:      agentID,
		Title:        in.Title,
		Description:  desc,
		StartAt:      in.StartAt,
		EndAt:        in.EndAt,
		Timezone:     in.Timezone,
		LocationName: in.LocationName,
		Address:      in.Address,
		Lat:          in.Lat,
		Lng:          in.Lng,
		URL:          in.URL,
		Price:        in.Price,
		Currency:     in.Currency,
		Audience:     in.Audience,
		EventType:    in.EventType,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

// MilesToMeters converts a search radius in miles to meters.
const MilesToMeters = 1609.34

// Accepted search radius, in miles.
const (
	MinRadiusMiles = 0.1
	MaxRadiusMiles = 100
)

// NearbyQuery is a single page request against the geo-temporal index.
type NearbyQuery struct {
	Lat          float64
	Lng          float64
	RadiusMeters float64
	// MinStart excludes events starting before it.
	MinStart time.Time
	// After is the keyset cursor; empty means the first page.
	After string
	// Limit is the page size. Repositories fetch Limit+1 rows.
	Limit int
}

// EventIDGenerator assigns lexically sortable, time-ordered event ids.
type EventIDGenerator interface {
	NewID(t time.Time) (string, error)
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// FindNearby returns up to q.Limit+1 events ordered by id ascending.
	FindNearby(ctx context.Context, q NearbyQuery) ([]*Event, error)
}

// EventService defines the business logic for publishing and discovering events.
type EventService interface {
	Create(ctx context.Context, agentID string, in EventInput) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Nearby(ctx context.Context, lat, lng, radiusMiles float64, cursor string, limit int) (*EventPage, error)
}
