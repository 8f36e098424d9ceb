package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vendor-discovery-service/internal/adapters/llm"
	"vendor-discovery-service/internal/adapters/vendorstore"
	"vendor-discovery-service/internal/api/dto"
	"vendor-discovery-service/internal/domain"
	"vendor-discovery-service/internal/recommend"
)

func sellerFixture(t *testing.T, gen *llm.ScriptedGenerator) *SellerHandler {
	t.Helper()
	store := vendorstore.NewStaticVendorStore([]domain.Vendor{
		{
			ID: 1, Name: "Warung A", Category: "minuman", IsLive: true,
			Location: mustCoord(t, -6.2026979, 106.816666),
		},
	})
	return &SellerHandler{
		Store:  store,
		Engine: recommend.NewEngine(gen, nil),
	}
}

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSellerInsightValidation(t *testing.T) {
	h := sellerFixture(t, &llm.ScriptedGenerator{})

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json at all"},
		{"unknown field", `{"category":"minuman","latitude":-6.2,"longitude":106.8,"extra":1}`},
		{"two objects", `{"category":"minuman","latitude":-6.2,"longitude":106.8}{}`},
		{"missing category", `{"latitude":-6.2,"longitude":106.8}`},
		{"blank category", `{"category":"  ","latitude":-6.2,"longitude":106.8}`},
		{"missing latitude", `{"category":"minuman","longitude":106.8}`},
		{"missing longitude", `{"category":"minuman","latitude":-6.2}`},
		{"out of range", `{"category":"minuman","latitude":-6.2,"longitude":181}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Insight(rec, postJSON("/seller/insight", tt.body))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestSellerInsightMethodNotAllowed(t *testing.T) {
	h := sellerFixture(t, &llm.ScriptedGenerator{})

	rec := httptest.NewRecorder()
	h.Insight(rec, httptest.NewRequest(http.MethodGet, "/seller/insight", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestSellerInsightSuccess(t *testing.T) {
	gen := &llm.ScriptedGenerator{
		Response: `{"message":"Selamat Siang! Dekat sekolah ramai.","target_location":"SDN Menteng 01"}`,
	}
	h := sellerFixture(t, gen)

	rec := httptest.NewRecorder()
	h.Insight(rec, postJSON("/seller/insight",
		`{"category":"minuman","latitude":-6.2,"longitude":106.816666}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var body dto.InsightResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Source != "ai" || body.TargetLocation != "SDN Menteng 01" {
		t.Fatalf("body = %+v", body)
	}
}

func TestSellerInsightFallbackOnGenerationFailure(t *testing.T) {
	gen := &llm.ScriptedGenerator{Response: "cannot help with that"}
	h := sellerFixture(t, gen)

	rec := httptest.NewRecorder()
	h.Insight(rec, postJSON("/seller/insight",
		`{"category":"minuman","latitude":-6.2,"longitude":106.816666}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("degraded generation must still return 200, got %d", rec.Code)
	}

	var body dto.InsightResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Source != "fallback" || body.Message == "" || body.TargetLocation == "" {
		t.Fatalf("body = %+v", body)
	}
}

func TestMarketAnalysisSuccess(t *testing.T) {
	gen := &llm.ScriptedGenerator{
		Response: `{"saturated":"minuman dingin","opportunity":"sarapan","strategy":"tambah menu pagi","score":72}`,
	}
	h := sellerFixture(t, gen)

	rec := httptest.NewRecorder()
	h.MarketAnalysis(rec, postJSON("/seller/market-analysis",
		`{"category":"minuman","latitude":-6.2,"longitude":106.816666}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var body dto.MarketAnalysisResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Source != "ai" || body.Score != 72 {
		t.Fatalf("body = %+v", body)
	}
	// The 300m vendor sits inside the 1km competitor radius.
	if !strings.Contains(gen.LastPrompt, "Warung A") {
		t.Fatalf("prompt missing competitor: %q", gen.LastPrompt)
	}
}

func TestMarketAnalysisStoreFailure(t *testing.T) {
	h := sellerFixture(t, &llm.ScriptedGenerator{})
	h.Store = &vendorstore.StaticVendorStore{Err: errors.New("connection refused")}

	rec := httptest.NewRecorder()
	h.MarketAnalysis(rec, postJSON("/seller/market-analysis",
		`{"category":"minuman","latitude":-6.2,"longitude":106.816666}`))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestMarketAnalysisFallbackScore(t *testing.T) {
	gen := &llm.ScriptedGenerator{Response: `{"saturated":"a","opportunity":"b"}`}
	h := sellerFixture(t, gen)

	rec := httptest.NewRecorder()
	h.MarketAnalysis(rec, postJSON("/seller/market-analysis",
		`{"category":"bakso","latitude":-6.2,"longitude":106.816666}`))

	var body dto.MarketAnalysisResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Source != "fallback" || body.Score != 50 {
		t.Fatalf("body = %+v", body)
	}
}
