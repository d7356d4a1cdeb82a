package helpers

import (
	"net/http"
	"strconv"
)

// NearbyParams are the query parameters of GET /v1/events/nearby.
// Range checks are left to the event service.
type NearbyParams struct {
	Lat    float64
	Lng    float64
	Radius float64
	Cursor string
	// Limit is 0 when the caller did not send one.
	Limit int
}

// ParseNearbyQuery reads lat, lng, radius, cursor and limit from the query string.
// It returns one message per missing or unparsable parameter.
func ParseNearbyQuery(r *http.Request) (NearbyParams, []string) {
	q := r.URL.Query()
	var p NearbyParams
	var errs []string

	parseFloat := func(name string, dest *float64) {
		s := q.Get(name)
		if s == "" {
			errs = append(errs, name+" is required")
			return
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			errs = append(errs, name+" must be a number")
			return
		}
		*dest = v
	}
	parseFloat("lat", &p.Lat)
	parseFloat("lng", &p.Lng)
	parseFloat("radius", &p.Radius)

	p.Cursor = q.Get("cursor")
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			errs = append(errs, "limit must be a positive integer")
		} else {
			p.Limit = v
		}
	}
	return p, errs
}
