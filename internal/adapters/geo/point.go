// Package geo converts event coordinates to and from the wire forms used by PostGIS.
package geo

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/encoding/wkt"
)

// SRID of every stored point (WGS 84).
const SRID = 4326

// ErrMalformedGeometry is returned when a stored value cannot be read as a lon/lat point.
var ErrMalformedGeometry = errors.New("malformed geometry")

// EncodePoint returns the EWKT form of (lng, lat), suitable for ST_GeogFromText.
func EncodePoint(lng, lat float64) string {
	return fmt.Sprintf("SRID=%d;%s", SRID, wkt.MarshalString(orb.Point{lng, lat}))
}

// DecodePoint reads a point from any of the forms a geography column may be
// scanned as:
//   - raw EWKB or WKB bytes (ST_AsEWKB / ST_AsBinary, binary protocol)
//   - hex-encoded EWKB or WKB, as string or bytes (default text protocol)
//   - EWKT or WKT text ("SRID=4326;POINT(lng lat)")
//
// Anything else, including nil and non-point geometries, yields an error
// wrapping ErrMalformedGeometry.
func DecodePoint(src any) (lng, lat float64, err error) {
	var p orb.Point
	switch v := src.(type) {
	case nil:
		return 0, 0, fmt.Errorf("%w: null value", ErrMalformedGeometry)
	case []byte:
		p, err = decodeBytes(v)
	case string:
		p, err = decodeBytes([]byte(v))
	default:
		return 0, 0, fmt.Errorf("%w: unsupported type %T", ErrMalformedGeometry, src)
	}
	if err != nil {
		return 0, 0, err
	}
	if !validLonLat(p) {
		return 0, 0, fmt.Errorf("%w: coordinates out of range (%v, %v)", ErrMalformedGeometry, p.X(), p.Y())
	}
	return p.X(), p.Y(), nil
}

func decodeBytes(b []byte) (orb.Point, error) {
	if len(b) == 0 {
		return orb.Point{}, fmt.Errorf("%w: empty value", ErrMalformedGeometry)
	}
	trimmed := strings.TrimSpace(string(b))
	switch {
	case isText(trimmed):
		return decodeText(trimmed)
	case isHex(trimmed):
		raw, err := hex.DecodeString(trimmed)
		if err != nil {
			return orb.Point{}, fmt.Errorf("%w: %v", ErrMalformedGeometry, err)
		}
		return decodeBinary(raw)
	default:
		return decodeBinary(b)
	}
}

func decodeBinary(raw []byte) (orb.Point, error) {
	g, _, err := ewkb.Unmarshal(raw)
	if err != nil {
		var werr error
		g, werr = wkb.Unmarshal(raw)
		if werr != nil {
			return orb.Point{}, fmt.Errorf("%w: %v", ErrMalformedGeometry, err)
		}
	}
	return asPoint(g)
}

func decodeText(s string) (orb.Point, error) {
	if strings.HasPrefix(strings.ToUpper(s), "SRID=") {
		_, rest, ok := strings.Cut(s, ";")
		if !ok {
			return orb.Point{}, fmt.Errorf("%w: bad EWKT %q", ErrMalformedGeometry, s)
		}
		s = rest
	}
	p, err := wkt.UnmarshalPoint(s)
	if err != nil {
		return orb.Point{}, fmt.Errorf("%w: %v", ErrMalformedGeometry, err)
	}
	return p, nil
}

func asPoint(g orb.Geometry) (orb.Point, error) {
	p, ok := g.(orb.Point)
	if !ok {
		return orb.Point{}, fmt.Errorf("%w: expected point, got %T", ErrMalformedGeometry, g)
	}
	return p, nil
}

func isText(s string) bool {
	u := strings.ToUpper(s)
	return strings.HasPrefix(u, "SRID=") || strings.HasPrefix(u, "POINT")
}

func isHex(s string) bool {
	if len(s) == 0 || len(s)%2 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

func validLonLat(p orb.Point) bool {
	x, y := p.X(), p.Y()
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	return x >= -180 && x <= 180 && y >= -90 && y <= 90
}
