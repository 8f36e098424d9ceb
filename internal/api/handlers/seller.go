package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"vendor-discovery-service/internal/api/dto"
	"vendor-discovery-service/internal/domain"
	"vendor-discovery-service/internal/ports"
	"vendor-discovery-service/internal/recommend"
	"vendor-discovery-service/internal/services"
)

// SellerHandler serves the two seller-facing recommendation endpoints:
// positioning insight and market analysis.
type SellerHandler struct {
	Store  ports.VendorStore
	Engine *recommend.Engine
}

// decodeSellerRequest validates the shared request body. It returns a
// zero coordinate and false after writing the error response.
func decodeSellerRequest(w http.ResponseWriter, r *http.Request) (dto.SellerRequest, domain.Coordinate, bool) {
	var req dto.SellerRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return req, domain.Coordinate{}, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return req, domain.Coordinate{}, false
	}

	if strings.TrimSpace(req.Category) == "" {
		writeError(w, r, http.StatusBadRequest, "category is required")
		return req, domain.Coordinate{}, false
	}
	if req.Latitude == nil || req.Longitude == nil {
		writeError(w, r, http.StatusBadRequest, "latitude and longitude are required")
		return req, domain.Coordinate{}, false
	}

	coord, err := domain.NewCoordinate(*req.Latitude, *req.Longitude)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "coordinate out of range")
		return req, domain.Coordinate{}, false
	}

	return req, coord, true
}

// Insight suggests where a live seller should position right now.
func (h *SellerHandler) Insight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, coord, ok := decodeSellerRequest(w, r)
	if !ok {
		return
	}

	insight := h.Engine.SellerInsight(r.Context(), req.Category, coord)

	writeJSON(w, r, http.StatusOK, dto.InsightResponse{
		Message:        insight.Message,
		TargetLocation: insight.TargetPlace,
		Source:         string(insight.Source),
	})
}

// MarketAnalysis rates the seller's local market. Competitors are the
// live vendors within one kilometer of the seller's position.
func (h *SellerHandler) MarketAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, coord, ok := decodeSellerRequest(w, r)
	if !ok {
		return
	}

	competitors, err := services.FindNearby(r.Context(), h.Store, coord, services.DefaultRadiusKm)
	if err != nil {
		zap.L().Error("list competitors failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	analysis := h.Engine.MarketAnalysis(r.Context(), req.Category, coord, competitors)

	writeJSON(w, r, http.StatusOK, dto.MarketAnalysisResponse{
		Saturated:   analysis.Saturated,
		Opportunity: analysis.Opportunity,
		Strategy:    analysis.Strategy,
		Score:       analysis.Score,
		Source:      string(analysis.Source),
	})
}
