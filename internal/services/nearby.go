package services

import (
	"context"
	"fmt"
	"slices"

	"vendor-discovery-service/internal/domain"
	"vendor-discovery-service/internal/geo"
	"vendor-discovery-service/internal/platform/obs"
	"vendor-discovery-service/internal/ports"
)

// Search radius bounds in kilometers. Out-of-range requests are clamped,
// not rejected, keeping the search area bounded.
const (
	MinRadiusKm     = 0.1
	MaxRadiusKm     = 10
	DefaultRadiusKm = 1
)

// ClampRadius bounds a requested radius to [MinRadiusKm, MaxRadiusKm].
func ClampRadius(radiusKm float64) float64 {
	if radiusKm < MinRadiusKm {
		return MinRadiusKm
	}
	if radiusKm > MaxRadiusKm {
		return MaxRadiusKm
	}
	return radiusKm
}

// FindNearby returns live vendors within radiusKm of center, ordered by
// ascending distance with vendor id as the tie-breaker.
//
// The store is queried with its own live-only predicate; distance is a
// derived value computed and filtered here rather than pushed into the
// store, which keeps the geodesy independently testable. An empty result
// is valid and distinct from an error.
func FindNearby(
	ctx context.Context,
	store ports.VendorStore,
	center domain.Coordinate,
	radiusKm float64,
) (_ []domain.VendorProximity, err error) {
	defer obs.Time(ctx, "services.FindNearby")(&err)

	radiusKm = ClampRadius(radiusKm)

	vendors, err := store.ListLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("find nearby: list live vendors: %w", err)
	}

	out := make([]domain.VendorProximity, 0, len(vendors))
	for _, v := range vendors {
		if !v.IsLive || v.Location == nil {
			continue
		}

		dKm := geo.DistanceKm(center, *v.Location)
		if dKm > radiusKm {
			continue
		}

		out = append(out, domain.VendorProximity{
			Vendor:     v,
			DistanceKm: dKm,
			DistanceM:  geo.DistanceM(center, *v.Location),
		})
	}

	// Tie-breaker ensures deterministic ordering when distances are equal.
	slices.SortFunc(out, func(a, b domain.VendorProximity) int {
		if a.DistanceKm < b.DistanceKm {
			return -1
		}
		if a.DistanceKm > b.DistanceKm {
			return 1
		}
		if a.Vendor.ID < b.Vendor.ID {
			return -1
		}
		if a.Vendor.ID > b.Vendor.ID {
			return 1
		}
		return 0
	})

	return out, nil
}
