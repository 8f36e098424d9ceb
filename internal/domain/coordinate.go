package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCoordinate = errors.New("coordinate out of range")

// Immutable geographic point (latitude, longitude) in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// NewCoordinate validates latitude/longitude ranges before constructing
// the value. Downstream geo code assumes coordinates are already valid.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("latitude %v must be within [-90, 90]: %w", lat, ErrInvalidCoordinate)
	}
	if lon < -180 || lon > 180 {
		return Coordinate{}, fmt.Errorf("longitude %v must be within [-180, 180]: %w", lon, ErrInvalidCoordinate)
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}

// String renders the point as "lat, lon", the form used in prompts and
// as the reverse-geocode fallback label.
func (c Coordinate) String() string {
	return fmt.Sprintf("%v, %v", c.Lat, c.Lon)
}
