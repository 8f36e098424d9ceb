package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vendor-discovery-service/internal/domain"
	"vendor-discovery-service/internal/platform/obs"
	"vendor-discovery-service/internal/ports"
	"vendor-discovery-service/internal/recommend"
)

// MapData is the assembled buyer view: conditions, the nearby vendor list,
// and a recommendation that is always present (AI-sourced or rule-based).
type MapData struct {
	Weather        domain.WeatherSnapshot
	WeatherLive    bool
	Vendors        []domain.VendorProximity
	Recommendation domain.Recommendation
	RadiusKm       float64
}

type MapDataDeps struct {
	Store   ports.VendorStore
	Weather ports.WeatherProvider
	Engine  *recommend.Engine
}

// BuildMapData serves the buyer flow. The vendor query and the weather
// fetch have no data dependency and run in parallel; the recommendation
// waits for both. A degraded weather fetch substitutes the default
// snapshot rather than failing the request.
func BuildMapData(
	ctx context.Context,
	deps MapDataDeps,
	center domain.Coordinate,
	radiusKm float64,
) (_ *MapData, err error) {
	defer obs.Time(ctx, "services.BuildMapData")(&err)

	radiusKm = ClampRadius(radiusKm)

	var (
		vendors  []domain.VendorProximity
		snapshot *domain.WeatherSnapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vendors, err = FindNearby(gctx, deps.Store, center, radiusKm)
		return err
	})
	g.Go(func() error {
		s, err := deps.Weather.CurrentWeather(gctx, center)
		if err != nil {
			zap.L().Warn("weather fetch degraded",
				zap.Float64("lat", center.Lat),
				zap.Float64("lon", center.Lon),
				zap.Error(err),
			)
			return nil
		}
		snapshot = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	weather := domain.DefaultWeather()
	if snapshot != nil {
		weather = *snapshot
	}

	rec := deps.Engine.BuyerRecommendation(ctx, snapshot, center, vendors)

	return &MapData{
		Weather:        weather,
		WeatherLive:    snapshot != nil,
		Vendors:        vendors,
		Recommendation: rec,
		RadiusKm:       radiusKm,
	}, nil
}
