package api

import (
	"net/http"

	"vendor-discovery-service/internal/api/handlers"
	"vendor-discovery-service/internal/ports"
	"vendor-discovery-service/internal/recommend"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	store ports.VendorStore,
	weather ports.WeatherProvider,
	engine *recommend.Engine,
) http.Handler {
	mux := http.NewServeMux()

	mapHandler := &handlers.MapDataHandler{
		Store:   store,
		Weather: weather,
		Engine:  engine,
	}
	sellerHandler := &handlers.SellerHandler{
		Store:  store,
		Engine: engine,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/map-data", mapHandler.Get)
	mux.HandleFunc("/seller/insight", sellerHandler.Insight)
	mux.HandleFunc("/seller/market-analysis", sellerHandler.MarketAnalysis)

	return requestIDMiddleware(loggingMiddleware(mux))
}
