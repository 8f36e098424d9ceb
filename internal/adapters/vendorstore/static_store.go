package vendorstore

import (
	"context"

	"vendor-discovery-service/internal/domain"
)

// StaticVendorStore serves a fixed vendor list. Used by tests and handy
// for running the service without a database.
type StaticVendorStore struct {
	Vendors []domain.Vendor
	Err     error
}

func NewStaticVendorStore(vendors []domain.Vendor) *StaticVendorStore {
	return &StaticVendorStore{Vendors: vendors}
}

func (s *StaticVendorStore) ListLive(ctx context.Context) ([]domain.Vendor, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]domain.Vendor, 0, len(s.Vendors))
	for _, v := range s.Vendors {
		if v.IsLive && v.Location != nil {
			out = append(out, v)
		}
	}
	return out, nil
}
