package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrParseFailure marks text that is not a "(longitude, latitude)" pair.
// It is recoverable: callers report it and ask for the coordinate again.
var ErrParseFailure = errors.New("parse failure")

const number = `[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`

var coordinatePattern = regexp.MustCompile(`^\(?\s*(` + number + `)\s*,\s*(` + number + `)\s*\)?$`)

// ParseGeoPoint parses "(lon, lat)" text into a GeoPoint. Parentheses and
// surrounding whitespace are optional. Values are not range checked.
func ParseGeoPoint(s string) (GeoPoint, error) {
	m := coordinatePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return GeoPoint{}, fmt.Errorf("parse geo point %q: expected (longitude, latitude): %w", s, ErrParseFailure)
	}

	lon, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return GeoPoint{}, fmt.Errorf("parse geo point %q: longitude: %w", s, errors.Join(ErrParseFailure, err))
	}
	lat, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return GeoPoint{}, fmt.Errorf("parse geo point %q: latitude: %w", s, errors.Join(ErrParseFailure, err))
	}

	return GeoPoint{Lon: lon, Lat: lat}, nil
}
