package geo

import (
	"math"

	"vendor-discovery-service/internal/domain"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371

// DistanceKm returns the great-circle distance between two points using
// the haversine formula. It is zero for identical points and symmetric in
// its arguments. The result is a ranking key for proximity, not a claim
// about road distance. Inputs are assumed to be validated Coordinates.
func DistanceKm(a, b domain.Coordinate) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// DistanceM returns the same distance rounded to whole meters.
func DistanceM(a, b domain.Coordinate) int {
	return int(math.Round(DistanceKm(a, b) * 1000))
}
