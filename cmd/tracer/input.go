package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lintang-b-s/navtrace/pkg/geo"
)

// readCoordinates parses one "lat,lon" pair per line. blank lines and lines starting with # are skipped.
func readCoordinates(r io.Reader) ([]geo.Coordinate, error) {
	coords := make([]geo.Coordinate, 0, 64)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		latStr, lonStr, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: expected 'lat,lon', got %q", line, text)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
		if err != nil || lat < -90 || lat > 90 {
			return nil, fmt.Errorf("line %d: invalid latitude %q", line, latStr)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
		if err != nil || lon < -180 || lon > 180 {
			return nil, fmt.Errorf("line %d: invalid longitude %q", line, lonStr)
		}
		coords = append(coords, geo.NewCoordinate(lat, lon))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return coords, nil
}
