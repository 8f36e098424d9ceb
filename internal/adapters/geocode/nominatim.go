package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"vendor-discovery-service/internal/domain"
	"vendor-discovery-service/internal/ports"
)

// NominatimResolver resolves a coordinate into a short place label via
// the OpenStreetMap Nominatim reverse endpoint.
//
// Upstream policy requires an identifying User-Agent and at most one
// request per second; the limiter enforces the latter across concurrent
// requests. Describe never fails outward: any upstream trouble yields the
// literal "Koordinat <lat>, <lon>" form.
type NominatimResolver struct {
	session   *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	cache     ports.PlaceCache
}

type reverseResponse struct {
	Address struct {
		Amenity  string `json:"amenity"`
		Building string `json:"building"`
		Road     string `json:"road"`
		Suburb   string `json:"suburb"`
		Village  string `json:"village"`
		City     string `json:"city"`
		Town     string `json:"town"`
	} `json:"address"`
}

// NewNominatimResolver builds a resolver. cache may be nil; baseURL falls
// back to the public instance when empty.
func NewNominatimResolver(baseURL, userAgent string, cache ports.PlaceCache) *NominatimResolver {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	if userAgent == "" {
		userAgent = "VendorDiscovery/1.0"
	}

	return &NominatimResolver{
		session:   &http.Client{Timeout: 5 * time.Second},
		baseURL:   baseURL,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Limit(1), 1),
		cache:     cache,
	}
}

// Describe returns a short label for the point, preferring landmark over
// road over suburb/village over city, joined with ", ".
func (r *NominatimResolver) Describe(ctx context.Context, at domain.Coordinate) string {
	fallback := "Koordinat " + at.String()
	key := fmt.Sprintf("%.6f,%.6f", at.Lat, at.Lon)

	if r.cache != nil {
		label, ok, err := r.cache.Get(ctx, key)
		if err != nil {
			zap.L().Warn("place cache read failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			return label
		}
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return fallback
	}

	label, err := r.lookup(ctx, at)
	if err != nil {
		zap.L().Warn("reverse geocode failed",
			zap.Float64("lat", at.Lat),
			zap.Float64("lon", at.Lon),
			zap.Error(err),
		)
		return fallback
	}
	if label == "" {
		return fallback
	}

	if r.cache != nil {
		if err := r.cache.Put(ctx, key, label); err != nil {
			zap.L().Warn("place cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return label
}

func (r *NominatimResolver) lookup(ctx context.Context, at domain.Coordinate) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/reverse", nil)
	if err != nil {
		return "", fmt.Errorf("reverse geocode: create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", fmt.Sprintf("%v", at.Lat))
	q.Set("lon", fmt.Sprintf("%v", at.Lon))
	q.Set("zoom", "18")
	q.Set("addressdetails", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := r.session.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode: unexpected status %d", resp.StatusCode)
	}

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("reverse geocode: decode response: %w", err)
	}

	addr := decoded.Address

	landmark := addr.Amenity
	if landmark == "" {
		landmark = addr.Building
	}
	suburb := addr.Suburb
	if suburb == "" {
		suburb = addr.Village
	}
	city := addr.City
	if city == "" {
		city = addr.Town
	}

	parts := make([]string, 0, 4)
	for _, p := range []string{landmark, addr.Road, suburb, city} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", "), nil
}
