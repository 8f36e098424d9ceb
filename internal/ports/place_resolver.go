package ports

import (
	"context"

	"vendor-discovery-service/internal/domain"
)

// PlaceResolver turns a coordinate into a short human place description
// for prompt building. It is total: on any upstream failure or empty
// result it returns the literal "Koordinat <lat>, <lon>" form.
type PlaceResolver interface {
	Describe(ctx context.Context, at domain.Coordinate) string
}

// PlaceCache stores resolved place labels keyed by a coordinate string.
// Implementations are best-effort; resolvers log and ignore cache errors.
type PlaceCache interface {
	Get(ctx context.Context, key string) (label string, ok bool, err error)
	Put(ctx context.Context, key, label string) error
}
