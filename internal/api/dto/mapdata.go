package dto

type WeatherResponse struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Description string  `json:"description"`
	Main        string  `json:"main"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

type NearbyShopResponse struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	WhatsappNumber string  `json:"whatsapp_number"`
	ProfileImage   *string `json:"profile_image"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Distance       int     `json:"distance"`
	DistanceKm     float64 `json:"distance_km"`
}

type RecommendationResponse struct {
	Recommendation string  `json:"recommendation"`
	Reason         string  `json:"reason"`
	ShopName       *string `json:"shop_name"`
	Source         string  `json:"source"`
}

type MapDataResponse struct {
	Weather          WeatherResponse        `json:"weather"`
	NearbyShops      []NearbyShopResponse   `json:"nearby_shops"`
	AIRecommendation RecommendationResponse `json:"ai_recommendation"`
	SearchRadius     float64                `json:"search_radius"`
	TotalShops       int                    `json:"total_shops"`
}
