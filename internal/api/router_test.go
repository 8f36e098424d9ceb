package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vendor-discovery-service/internal/adapters/llm"
	"vendor-discovery-service/internal/adapters/vendorstore"
	"vendor-discovery-service/internal/adapters/weather"
	"vendor-discovery-service/internal/recommend"
)

func testRouter() http.Handler {
	engine := recommend.NewEngine(&llm.ScriptedGenerator{}, nil)
	return NewRouter(
		vendorstore.NewStaticVendorStore(nil),
		&weather.StaticWeatherProvider{},
		engine,
	)
}

func TestRouterHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRouterAssignsRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("X-Request-ID header missing")
	}
}

func TestRouterEchoesCallerRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")

	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "caller-supplied" {
		t.Fatalf("X-Request-ID = %q, want caller value echoed", got)
	}
}

func TestRouterUnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
