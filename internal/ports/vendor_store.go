package ports

import (
	"context"

	"vendor-discovery-service/internal/domain"
)

// Port: boundary for reading vendor records from the external store.
// The store is owned by the marketplace CRUD layer; this subsystem only
// issues reads against it.
type VendorStore interface {
	// Return all vendors currently live and broadcasting a location.
	ListLive(ctx context.Context) ([]domain.Vendor, error)
}
