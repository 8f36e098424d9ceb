package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"vendor-discovery-service/internal/adapters/geocode"
	"vendor-discovery-service/internal/adapters/llm"
	"vendor-discovery-service/internal/adapters/vendorstore"
	"vendor-discovery-service/internal/adapters/weather"
	"vendor-discovery-service/internal/api"
	"vendor-discovery-service/internal/platform/db"
	"vendor-discovery-service/internal/ports"
	"vendor-discovery-service/internal/recommend"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, OpenWeatherMap, Nominatim, the
// Anthropic generator) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		// Not an error in deployed environments.
		os.Stderr.WriteString("No .env file found (using environment variables)\n")
	}

	initLogger()
	log := zap.L()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	weatherKey := os.Getenv("WEATHER_API_KEY")
	if weatherKey == "" {
		log.Fatal("WEATHER_API_KEY is required")
	}

	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	if anthropicKey == "" {
		log.Fatal("ANTHROPIC_API_KEY is required")
	}

	port := getEnv("PORT", "8080")

	storeDB, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal("open vendor store", zap.Error(err))
	}
	defer storeDB.Close()

	store := vendorstore.NewPostgresVendorStore(storeDB)

	weatherProvider, err := weather.NewOpenWeatherProvider(weatherKey)
	if err != nil {
		log.Fatal("weather provider", zap.Error(err))
	}

	placeCache, closeCache, err := openPlaceCache()
	if err != nil {
		log.Fatal("place cache", zap.Error(err))
	}
	defer closeCache()

	geocoder := geocode.NewNominatimResolver(
		os.Getenv("NOMINATIM_BASE_URL"),
		getEnv("NOMINATIM_USER_AGENT", "VendorDiscovery/1.0"),
		placeCache,
	)

	generator, err := llm.NewAnthropicGenerator(anthropicKey, os.Getenv("LLM_MODEL"))
	if err != nil {
		log.Fatal("generator", zap.Error(err))
	}

	engine := recommend.NewEngine(generator, geocoder)
	router := api.NewRouter(store, weatherProvider, engine)

	// Write timeout covers the slowest path, a cold market analysis.
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("server listening", zap.String("addr", srv.Addr))
	log.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}

func initLogger() {
	cfg := zap.NewProductionConfig()
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		_ = cfg.Level.UnmarshalText([]byte(lvl))
	}

	logger, err := cfg.Build()
	if err != nil {
		os.Stderr.WriteString("logger init failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)
}

// openPlaceCache selects the place-label cache backend: a shared Redis
// when PLACE_CACHE=redis, a local SQLite file otherwise.
func openPlaceCache() (ports.PlaceCache, func(), error) {
	if getEnv("PLACE_CACHE", "sqlite") == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		})
		return geocode.NewRedisPlaceCache(client), func() { _ = client.Close() }, nil
	}

	cacheDB, err := sql.Open("sqlite", getEnv("CACHE_DB_PATH", "data/cache.db"))
	if err != nil {
		return nil, nil, err
	}
	if err := geocode.InitPlaceCacheSchema(cacheDB); err != nil {
		cacheDB.Close()
		return nil, nil, err
	}

	return geocode.NewSqlitePlaceCache(cacheDB), func() { _ = cacheDB.Close() }, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
