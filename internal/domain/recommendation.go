package domain

// Source records whether a recommendation came from the external
// generation service or from the local rule engine.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Recommendation is the buyer-mode result: what to buy, why, and from whom.
// VendorName is empty when no vendor is nearby.
type Recommendation struct {
	Item       string
	Reason     string
	VendorName string
	Source     Source
}

// PositioningInsight is the seller-mode result: where to stand right now.
type PositioningInsight struct {
	Message     string
	TargetPlace string
	Source      Source
}

// MarketAnalysis is the seller market-saturation result.
// Score is a location-potential score and always lies in [0, 100],
// on the fallback path included.
type MarketAnalysis struct {
	Saturated   string
	Opportunity string
	Strategy    string
	Score       int
	Source      Source
}
