package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"meetspace/internal/adapters/geo"
	"meetspace/internal/domain"
)

const eventColumns = `event_id, agent_id, title, description, start_at, end_at, timezone, location_name,
		address, coordinates, url, price, currency, audience, event_type, created_at, updated_at`

type eventRepository struct {
	DB     *sql.DB
	logger *slog.Logger
}

func NewEventRepository(db *sql.DB, logger *slog.Logger) domain.EventRepository {
	return &eventRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (event_id, agent_id, title, description, start_at, end_at, timezone, location_name,
			address, coordinates, url, price, currency, audience, event_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, ST_GeogFromText($10), $11, $12, $13, $14, $15, $16, $17)
	`
	price := decimal.NullDecimal{}
	if e.Price != nil {
		price = decimal.NewNullDecimal(*e.Price)
	}
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.AgentID, e.Title, e.Description, e.StartAt, e.EndAt, e.Timezone, e.LocationName,
		e.Address, geo.EncodePoint(e.Lng, e.Lat), e.URL, price, e.Currency,
		string(e.Audience), string(e.EventType), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("agent %s is not registered: %w", e.AgentID, err)
		}
		return err
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1`
	e, err := r.scanEvent(ctx, r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// FindNearby relies on the GiST index on coordinates for ST_DWithin and on the
// primary key for the keyset order. It fetches q.Limit+1 rows.
func (r *eventRepository) FindNearby(ctx context.Context, q domain.NearbyQuery) ([]*domain.Event, error) {
	var b strings.Builder
	b.WriteString(`SELECT ` + eventColumns + `
		FROM events
		WHERE start_at >= $1
		  AND ST_DWithin(coordinates, ST_GeogFromText($2), $3)`)
	args := []any{q.MinStart, geo.EncodePoint(q.Lng, q.Lat), q.RadiusMeters}
	if q.After != "" {
		args = append(args, q.After)
		fmt.Fprintf(&b, "\n\t\t  AND event_id > $%d", len(args))
	}
	args = append(args, q.Limit+1)
	fmt.Fprintf(&b, "\n\t\tORDER BY event_id\n\t\tLIMIT $%d", len(args))

	rows, err := r.DB.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0, q.Limit+1)
	for rows.Next() {
		e, err := r.scanEvent(ctx, rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanEvent reads one eventColumns row. A row whose coordinates cannot be
// decoded is returned at (0, 0) with a warning rather than failing the read.
func (r *eventRepository) scanEvent(ctx context.Context, row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull, addressNull, urlNull, currencyNull sql.NullString
	var endNull sql.NullTime
	var price decimal.NullDecimal
	var coords any
	var audience, eventType string
	if err := row.Scan(
		&e.ID, &e.AgentID, &e.Title, &descNull, &e.StartAt, &endNull, &e.Timezone, &e.LocationName,
		&addressNull, &coords, &urlNull, &price, &currencyNull, &audience, &eventType, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	lng, lat, err := geo.DecodePoint(coords)
	if err != nil {
		r.logger.WarnContext(ctx, "malformed event geometry", "event_id", e.ID, "err", err)
		lng, lat = 0, 0
	}
	e.Lng, e.Lat = lng, lat
	e.Audience = domain.Audience(audience)
	e.EventType = domain.EventType(eventType)
	if descNull.Valid {
		e.Description = &descNull.String
	}
	if endNull.Valid {
		e.EndAt = &endNull.Time
	}
	if addressNull.Valid {
		e.Address = &addressNull.String
	}
	if urlNull.Valid {
		e.URL = &urlNull.String
	}
	if price.Valid {
		e.Price = &price.Decimal
	}
	if currencyNull.Valid {
		e.Currency = &currencyNull.String
	}
	return e, nil
}
