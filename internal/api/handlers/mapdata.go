package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"vendor-discovery-service/internal/api/dto"
	"vendor-discovery-service/internal/domain"
	"vendor-discovery-service/internal/ports"
	"vendor-discovery-service/internal/recommend"
	"vendor-discovery-service/internal/services"
)

// MapDataHandler serves the buyer discovery flow: nearby live vendors,
// current weather, and a recommendation.
type MapDataHandler struct {
	Store   ports.VendorStore
	Weather ports.WeatherProvider
	Engine  *recommend.Engine
}

func (h *MapDataHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("latitude"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "latitude is required and must be numeric")
		return
	}

	lon, err := strconv.ParseFloat(q.Get("longitude"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "longitude is required and must be numeric")
		return
	}

	center, err := domain.NewCoordinate(lat, lon)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCoordinate) {
			writeError(w, r, http.StatusBadRequest, "coordinate out of range")
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid coordinate")
		return
	}

	// Out-of-range radius values are clamped downstream, never rejected.
	radius := float64(services.DefaultRadiusKm)
	if s := q.Get("radius"); s != "" {
		radius, err = strconv.ParseFloat(s, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "radius must be numeric")
			return
		}
	}

	deps := services.MapDataDeps{
		Store:   h.Store,
		Weather: h.Weather,
		Engine:  h.Engine,
	}

	data, err := services.BuildMapData(r.Context(), deps, center, radius)
	if err != nil {
		zap.L().Error("build map data failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.MapDataResponse{
		Weather: dto.WeatherResponse{
			Temperature: data.Weather.TemperatureC,
			FeelsLike:   data.Weather.FeelsLikeC,
			Description: data.Weather.Description,
			Main:        data.Weather.Condition,
			Humidity:    data.Weather.HumidityPct,
			WindSpeed:   data.Weather.WindSpeedMS,
		},
		NearbyShops:      make([]dto.NearbyShopResponse, 0, len(data.Vendors)),
		AIRecommendation: toRecommendationResponse(data.Recommendation),
		SearchRadius:     data.RadiusKm,
		TotalShops:       len(data.Vendors),
	}

	for _, v := range data.Vendors {
		var profileImage *string
		if v.Vendor.ProfileImage != "" {
			img := v.Vendor.ProfileImage
			profileImage = &img
		}

		res.NearbyShops = append(res.NearbyShops, dto.NearbyShopResponse{
			ID:             v.Vendor.ID,
			Name:           v.Vendor.Name,
			Category:       v.Vendor.Category,
			WhatsappNumber: v.Vendor.WhatsApp,
			ProfileImage:   profileImage,
			Latitude:       v.Vendor.Location.Lat,
			Longitude:      v.Vendor.Location.Lon,
			Distance:       v.DistanceM,
			DistanceKm:     math.Round(v.DistanceKm*100) / 100,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toRecommendationResponse(rec domain.Recommendation) dto.RecommendationResponse {
	var shopName *string
	if rec.VendorName != "" {
		name := rec.VendorName
		shopName = &name
	}

	return dto.RecommendationResponse{
		Recommendation: rec.Item,
		Reason:         rec.Reason,
		ShopName:       shopName,
		Source:         string(rec.Source),
	}
}
