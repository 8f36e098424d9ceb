package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vendor-discovery-service/internal/adapters/llm"
	"vendor-discovery-service/internal/adapters/vendorstore"
	"vendor-discovery-service/internal/adapters/weather"
	"vendor-discovery-service/internal/api/dto"
	"vendor-discovery-service/internal/domain"
	"vendor-discovery-service/internal/recommend"
)

func mustCoord(t *testing.T, lat, lon float64) *domain.Coordinate {
	t.Helper()
	c, err := domain.NewCoordinate(lat, lon)
	if err != nil {
		t.Fatalf("coordinate: %v", err)
	}
	return &c
}

func buyerFixture(t *testing.T, gen *llm.ScriptedGenerator) *MapDataHandler {
	t.Helper()
	store := vendorstore.NewStaticVendorStore([]domain.Vendor{
		{
			ID: 1, Name: "Warung A", Category: "minuman", WhatsApp: "6281200000001",
			IsLive: true, ProfileImage: "https://img.example/a.jpg",
			Location: mustCoord(t, -6.2026979, 106.816666),
		},
		{
			ID: 2, Name: "Warung B", Category: "gorengan", WhatsApp: "6281200000002",
			IsLive: true,
			Location: mustCoord(t, -6.2071946, 106.816666),
		},
		{
			ID: 3, Name: "Warung C", Category: "bakso", WhatsApp: "6281200000003",
			IsLive: false,
			Location: mustCoord(t, -6.2008993, 106.816666),
		},
	})

	return &MapDataHandler{
		Store: store,
		Weather: &weather.StaticWeatherProvider{
			Snapshot: &domain.WeatherSnapshot{
				TemperatureC: 31, FeelsLikeC: 35, Description: "cerah",
				Condition: "Clear", HumidityPct: 60, WindSpeedMS: 2.0,
			},
		},
		Engine: recommend.NewEngine(gen, nil),
	}
}

func TestMapDataRequiresCoordinates(t *testing.T) {
	h := buyerFixture(t, &llm.ScriptedGenerator{})

	tests := []struct {
		name   string
		target string
	}{
		{"missing latitude", "/map-data?longitude=106.8"},
		{"missing longitude", "/map-data?latitude=-6.2"},
		{"non numeric latitude", "/map-data?latitude=abc&longitude=106.8"},
		{"non numeric radius", "/map-data?latitude=-6.2&longitude=106.8&radius=near"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Get(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body["error"] == "" {
				t.Fatal("error message missing")
			}
		})
	}
}

func TestMapDataRejectsOutOfRangeCoordinate(t *testing.T) {
	h := buyerFixture(t, &llm.ScriptedGenerator{})

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/map-data?latitude=91&longitude=106.8", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestMapDataMethodNotAllowed(t *testing.T) {
	h := buyerFixture(t, &llm.ScriptedGenerator{})

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodPost, "/map-data", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if rec.Header().Get("Allow") != http.MethodGet {
		t.Fatalf("Allow = %q, want GET", rec.Header().Get("Allow"))
	}
}

func TestMapDataSuccess(t *testing.T) {
	gen := &llm.ScriptedGenerator{
		Response: `{"recommendation":"Es Teh","reason":"cuaca panas","shop_name":"Warung A"}`,
	}
	h := buyerFixture(t, gen)

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet,
		"/map-data?latitude=-6.2&longitude=106.816666&radius=1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var body dto.MapDataResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if body.TotalShops != 2 || len(body.NearbyShops) != 2 {
		t.Fatalf("total = %d, shops = %d, want 2 each", body.TotalShops, len(body.NearbyShops))
	}
	if body.NearbyShops[0].ID != 1 || body.NearbyShops[1].ID != 2 {
		t.Fatalf("shops out of order: %+v", body.NearbyShops)
	}
	if body.NearbyShops[0].Distance != 300 || body.NearbyShops[1].Distance != 800 {
		t.Fatalf("distances = %d/%d, want 300/800",
			body.NearbyShops[0].Distance, body.NearbyShops[1].Distance)
	}
	if body.NearbyShops[0].ProfileImage == nil || body.NearbyShops[1].ProfileImage != nil {
		t.Fatal("profile image presence mismatch")
	}
	if body.SearchRadius != 1 {
		t.Fatalf("search radius = %v, want 1", body.SearchRadius)
	}
	if body.Weather.Temperature != 31 || body.Weather.Description != "cerah" {
		t.Fatalf("weather = %+v", body.Weather)
	}
	if body.AIRecommendation.Source != "ai" || body.AIRecommendation.Recommendation != "Es Teh" {
		t.Fatalf("recommendation = %+v", body.AIRecommendation)
	}
	if body.AIRecommendation.ShopName == nil || *body.AIRecommendation.ShopName != "Warung A" {
		t.Fatalf("shop name = %v", body.AIRecommendation.ShopName)
	}
}

func TestMapDataRadiusClampedInResponse(t *testing.T) {
	h := buyerFixture(t, &llm.ScriptedGenerator{Err: errors.New("down")})

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet,
		"/map-data?latitude=-6.2&longitude=106.816666&radius=50", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body dto.MapDataResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.SearchRadius != 10 {
		t.Fatalf("search radius = %v, want clamp to 10", body.SearchRadius)
	}
	if body.AIRecommendation.Source != "fallback" {
		t.Fatalf("source = %q, want fallback when generation fails", body.AIRecommendation.Source)
	}
}

func TestMapDataStoreFailure(t *testing.T) {
	h := buyerFixture(t, &llm.ScriptedGenerator{})
	h.Store = &vendorstore.StaticVendorStore{Err: errors.New("connection refused")}

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet,
		"/map-data?latitude=-6.2&longitude=106.816666", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
