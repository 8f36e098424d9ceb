package weather

import (
	"context"

	"vendor-discovery-service/internal/domain"
)

// StaticWeatherProvider replays a fixed snapshot (or its absence) and
// counts calls. Used by tests.
type StaticWeatherProvider struct {
	Snapshot *domain.WeatherSnapshot
	Err      error
	Calls    int
}

func (p *StaticWeatherProvider) CurrentWeather(ctx context.Context, at domain.Coordinate) (*domain.WeatherSnapshot, error) {
	p.Calls++
	return p.Snapshot, p.Err
}
