package dto

// Shared request body for the seller endpoints. Coordinates are pointers
// so a missing field is distinguishable from zero.
type SellerRequest struct {
	Category  string   `json:"category"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type InsightResponse struct {
	Message        string `json:"message"`
	TargetLocation string `json:"target_location"`
	Source         string `json:"source"`
}

type MarketAnalysisResponse struct {
	Saturated   string `json:"saturated"`
	Opportunity string `json:"opportunity"`
	Strategy    string `json:"strategy"`
	Score       int    `json:"score"`
	Source      string `json:"source"`
}
