package geo

import (
	"errors"
	"math"

	"github.com/golang/geo/s2"
)

var ErrEmptyBounds = errors.New("geo: bounds of an empty coordinate set")

// Bounds returns the south-west and north-east corners of the rectangle containing every coordinate.
// sw.Lon <= ne.Lon always holds: a route crossing the antimeridian gets the plain min/max longitude
// instead of the wrapped s2 interval.
func Bounds(coords []Coordinate) (sw Coordinate, ne Coordinate, err error) {
	if len(coords) == 0 {
		return Coordinate{}, Coordinate{}, ErrEmptyBounds
	}

	rect := s2.EmptyRect()
	for _, c := range coords {
		rect = rect.AddPoint(s2.LatLngFromDegrees(c.Lat, c.Lon))
	}

	lo, hi := rect.Lo(), rect.Hi()
	minLon, maxLon := lo.Lng.Degrees(), hi.Lng.Degrees()
	if rect.Lng.IsInverted() {
		minLon, maxLon = coords[0].Lon, coords[0].Lon
		for _, c := range coords[1:] {
			minLon = math.Min(minLon, c.Lon)
			maxLon = math.Max(maxLon, c.Lon)
		}
	}
	return NewCoordinate(lo.Lat.Degrees(), minLon), NewCoordinate(hi.Lat.Degrees(), maxLon), nil
}

// S2Distance. great-circle distance in meters computed on the s2 sphere.
func S2Distance(a, b Coordinate) float64 {
	angle := s2.LatLngFromDegrees(a.Lat, a.Lon).Distance(s2.LatLngFromDegrees(b.Lat, b.Lon))
	return angle.Radians() * EarthRadiusMeters
}
