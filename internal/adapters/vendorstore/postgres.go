package vendorstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vendor-discovery-service/internal/domain"
	"vendor-discovery-service/internal/platform/obs"
)

// PostgresVendorStore reads vendor records from the marketplace's shops
// table. This subsystem never writes it; registration and admin CRUD own
// the write side.
type PostgresVendorStore struct {
	DB *sql.DB
}

func NewPostgresVendorStore(db *sql.DB) *PostgresVendorStore {
	return &PostgresVendorStore{DB: db}
}

// ListLive returns vendors flagged live with a broadcast location. The
// store-level predicate stops at liveness; distance filtering on the
// derived value happens in the resolver.
func (s *PostgresVendorStore) ListLive(ctx context.Context) (_ []domain.Vendor, err error) {
	defer obs.Time(ctx, "vendorstore.ListLive")(&err)

	if s.DB == nil {
		return nil, errors.New("vendor store: db is nil")
	}

	q := `
	SELECT id, name, category, whatsapp_number, profile_image, cart_image, latitude, longitude
    FROM shops
    WHERE is_live = TRUE
      AND latitude IS NOT NULL
      AND longitude IS NOT NULL;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list live vendors: query shops: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Vendor, 0)
	for rows.Next() {
		var (
			v            domain.Vendor
			profileImage sql.NullString
			cartImage    sql.NullString
			lat, lon     float64
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Category, &v.WhatsApp, &profileImage, &cartImage, &lat, &lon); err != nil {
			return nil, fmt.Errorf("list live vendors: scan row: %w", err)
		}

		coord, err := domain.NewCoordinate(lat, lon)
		if err != nil {
			return nil, fmt.Errorf("list live vendors: vendor id=%d: %w", v.ID, err)
		}

		v.IsLive = true
		v.Location = &coord
		v.ProfileImage = profileImage.String
		v.CartImage = cartImage.String
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list live vendors: row iteration: %w", err)
	}

	return out, nil
}
