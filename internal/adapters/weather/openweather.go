package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"vendor-discovery-service/internal/domain"
)

// OpenWeatherProvider fetches current conditions from OpenWeatherMap.
//
// The gateway is best-effort: a timeout, non-success status or malformed
// body is logged here and surfaces to the caller as a nil snapshot. The
// single short attempt keeps the buyer request's worst case bounded.
type OpenWeatherProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

type currentResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func NewOpenWeatherProvider(apiKey string) (*OpenWeatherProvider, error) {
	if apiKey == "" {
		return nil, errors.New("weather api key is empty")
	}

	return &OpenWeatherProvider{
		session: &http.Client{Timeout: 5 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
	}, nil
}

// CurrentWeather returns conditions at the point in metric units with
// Indonesian description text, or nil when the upstream degrades.
func (p *OpenWeatherProvider) CurrentWeather(ctx context.Context, at domain.Coordinate) (*domain.WeatherSnapshot, error) {
	endpoint := p.baseURL + "/weather"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("current weather: create request: %w", err)
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%v", at.Lat))
	q.Set("lon", fmt.Sprintf("%v", at.Lon))
	q.Set("appid", p.apiKey)
	q.Set("units", "metric")
	q.Set("lang", "id")
	req.URL.RawQuery = q.Encode()

	resp, err := p.session.Do(req)
	if err != nil {
		zap.L().Warn("weather request failed",
			zap.Float64("lat", at.Lat),
			zap.Float64("lon", at.Lon),
			zap.Error(err),
		)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Warn("weather upstream returned non-success",
			zap.Int("status", resp.StatusCode),
			zap.Float64("lat", at.Lat),
			zap.Float64("lon", at.Lon),
		)
		return nil, nil
	}

	var decoded currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		zap.L().Warn("weather response malformed", zap.Error(err))
		return nil, nil
	}

	if len(decoded.Weather) == 0 {
		zap.L().Warn("weather response missing conditions block")
		return nil, nil
	}

	return &domain.WeatherSnapshot{
		TemperatureC: math.Round(decoded.Main.Temp),
		FeelsLikeC:   math.Round(decoded.Main.FeelsLike),
		Description:  decoded.Weather[0].Description,
		Condition:    decoded.Weather[0].Main,
		HumidityPct:  decoded.Main.Humidity,
		WindSpeedMS:  decoded.Wind.Speed,
	}, nil
}
