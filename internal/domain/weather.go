package domain

// WeatherSnapshot holds current conditions at a point, in metric units.
// Absence (a failed or timed-out fetch) is represented by a nil pointer;
// a weather failure is never an error in this subsystem.
type WeatherSnapshot struct {
	TemperatureC float64
	FeelsLikeC   float64
	Description  string
	Condition    string
	HumidityPct  int
	WindSpeedMS  float64
}

// DefaultWeather is the snapshot substituted when the gateway degrades,
// so recommendation prompts and fallbacks always have conditions to work
// with.
func DefaultWeather() WeatherSnapshot {
	return WeatherSnapshot{
		TemperatureC: 28,
		FeelsLikeC:   30,
		Description:  "cerah",
		Condition:    "Clear",
		HumidityPct:  70,
		WindSpeedMS:  2.5,
	}
}
