package ports

import (
	"context"

	"vendor-discovery-service/internal/domain"
)

// Contract for fetching a current-conditions snapshot at a point.
//
// Implementations absorb upstream failures: a timeout, non-success status
// or malformed body is logged by the adapter and surfaces to callers as a
// nil snapshot with a nil error. A non-nil error signals a local problem
// (misconfiguration), not upstream weather availability.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, at domain.Coordinate) (*domain.WeatherSnapshot, error)
}
