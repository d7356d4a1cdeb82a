package domain

// Nearby page size defaults and limits.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// EventPage is one page of a keyset-paginated event listing.
// NextCursor is nil on the last page.
type EventPage struct {
	Events     []*Event `json:"events"`
	NextCursor *string  `json:"next_cursor"`
}

// NewEventPage builds a page from rows fetched with LIMIT limit+1.
// If rows holds more than limit events, it is truncated to limit and the
// cursor is set to the id of the last retained event.
func NewEventPage(rows []*Event, limit int) *EventPage {
	if rows == nil {
		rows = []*Event{}
	}
	page := &EventPage{Events: rows}
	if limit > 0 && len(rows) > limit {
		page.Events = rows[:limit]
		next := page.Events[limit-1].ID
		page.NextCursor = &next
	}
	return page
}
