package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/twpayne/go-polyline"
)

var ErrInvalidPolyline = errors.New("geo: invalid encoded polyline")

// DecodePolyline decodes a Google encoded polyline into coordinates in input order.
// precision is the number of decimals of the encoder: 5 (google, openrouteservice) or 6 (osrm, graphhopper).
// 0 means 5.
func DecodePolyline(encoded string, precision int) ([]Coordinate, error) {
	codec, err := codecFor(precision)
	if err != nil {
		return nil, err
	}

	coords, rest, err := codec.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolyline, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidPolyline, len(rest))
	}

	out := make([]Coordinate, len(coords))
	for i, c := range coords {
		out[i] = NewCoordinate(c[0], c[1])
	}
	return out, nil
}

// EncodePolyline is the inverse of DecodePolyline.
func EncodePolyline(coords []Coordinate, precision int) (string, error) {
	codec, err := codecFor(precision)
	if err != nil {
		return "", err
	}

	raw := make([][]float64, len(coords))
	for i, c := range coords {
		raw[i] = []float64{c.Lat, c.Lon}
	}
	return string(codec.EncodeCoords(nil, raw)), nil
}

func codecFor(precision int) (polyline.Codec, error) {
	if precision == 0 {
		precision = 5
	}
	if precision < 1 || precision > 7 {
		return polyline.Codec{}, fmt.Errorf("%w: unsupported precision %d", ErrInvalidPolyline, precision)
	}
	return polyline.Codec{Dim: 2, Scale: math.Pow(10, float64(precision))}, nil
}
