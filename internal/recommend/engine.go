package recommend

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vendor-discovery-service/internal/domain"
	"vendor-discovery-service/internal/ports"
)

// Per-mode generation timeouts. Each call is attempted exactly once; a
// failure degrades to the rule-based fallback instead of retrying, so the
// timeout bounds the worst-case latency of the whole operation. Market
// analysis is the heaviest generation task and tolerates the longest wait.
const (
	buyerTimeout   = 30 * time.Second
	insightTimeout = 30 * time.Second
	marketTimeout  = 60 * time.Second
)

// Engine resolves recommendations for the three use-case modes through one
// shared protocol: build a prompt, ask the external generator once, accept
// the answer only if it parses into the mode's required schema, otherwise
// substitute a deterministic local fallback. Every method returns a
// complete result on every path and never an error.
type Engine struct {
	gen    ports.Generator
	places ports.PlaceResolver

	now func() time.Time
	loc *time.Location
}

func NewEngine(gen ports.Generator, places ports.PlaceResolver) *Engine {
	// Prompts describe local time of day; pinning the zone avoids
	// day/night misclassification on UTC servers.
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.FixedZone("WIB", 7*60*60)
	}

	return &Engine{
		gen:    gen,
		places: places,
		now:    time.Now,
		loc:    loc,
	}
}

// BuyerRecommendation suggests what to buy from the nearby vendors given
// current weather. With no vendors nearby it short-circuits to a canned
// "explore" fallback without touching the network.
func (e *Engine) BuyerRecommendation(
	ctx context.Context,
	weather *domain.WeatherSnapshot,
	center domain.Coordinate,
	nearby []domain.VendorProximity,
) domain.Recommendation {
	if len(nearby) == 0 {
		return exploreFallback()
	}

	w := domain.DefaultWeather()
	if weather != nil {
		w = *weather
	}

	prompt := buyerPrompt(w, center, nearby)
	obj, ok := e.askGenerator(ctx, "buyer", buyerTimeout, prompt,
		[]string{"recommendation", "reason", "shop_name"})
	if ok {
		item, itemOK := stringField(obj, "recommendation")
		reason, reasonOK := stringField(obj, "reason")
		if itemOK && reasonOK {
			// shop_name may legitimately come back null.
			shop, _ := stringField(obj, "shop_name")
			return domain.Recommendation{
				Item:       item,
				Reason:     reason,
				VendorName: shop,
				Source:     domain.SourceAI,
			}
		}
	}

	return buyerFallback(w, nearby)
}

// SellerInsight tells a roaming seller where to stand right now, based on
// local time of day and the resolved place description of their position.
func (e *Engine) SellerInsight(
	ctx context.Context,
	category string,
	at domain.Coordinate,
) domain.PositioningInsight {
	now := e.now().In(e.loc)
	period := periodOf(now.Hour())

	place := "Koordinat " + at.String()
	if e.places != nil {
		place = e.places.Describe(ctx, at)
	}

	prompt := insightPrompt(category, place, now, period)
	obj, ok := e.askGenerator(ctx, "seller_insight", insightTimeout, prompt,
		[]string{"message", "target_location"})
	if ok {
		msg, msgOK := stringField(obj, "message")
		target, targetOK := stringField(obj, "target_location")
		if msgOK && targetOK {
			return domain.PositioningInsight{
				Message:     msg,
				TargetPlace: target,
				Source:      domain.SourceAI,
			}
		}
	}

	return insightFallback(period)
}

// MarketAnalysis rates how saturated the local market is for a seller's
// category given the competitors around them.
func (e *Engine) MarketAnalysis(
	ctx context.Context,
	category string,
	at domain.Coordinate,
	competitors []domain.VendorProximity,
) domain.MarketAnalysis {
	prompt := marketPrompt(category, at, competitors)
	obj, ok := e.askGenerator(ctx, "market_analysis", marketTimeout, prompt,
		[]string{"saturated", "opportunity", "strategy", "score"})
	if ok {
		saturated, satOK := stringField(obj, "saturated")
		opportunity, oppOK := stringField(obj, "opportunity")
		strategy, strOK := stringField(obj, "strategy")
		score, scoreOK := intField(obj, "score")
		if satOK && oppOK && strOK && scoreOK {
			return domain.MarketAnalysis{
				Saturated:   saturated,
				Opportunity: opportunity,
				Strategy:    strategy,
				Score:       clampScore(score),
				Source:      domain.SourceAI,
			}
		}
	}

	return marketFallback()
}

// askGenerator runs the shared call/validate half of the protocol: one
// bounded attempt against the generator, then lenient extraction of a JSON
// object carrying the mode's required keys. Any failure is logged and
// reported as !ok so the caller falls back locally.
func (e *Engine) askGenerator(
	ctx context.Context,
	mode string,
	timeout time.Duration,
	prompt string,
	required []string,
) (map[string]any, bool) {
	if e.gen == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		zap.L().Warn("generation call failed",
			zap.String("mode", mode),
			zap.Error(err),
		)
		return nil, false
	}

	obj, ok := extractObject(raw, required)
	if !ok {
		zap.L().Warn("generation response unusable",
			zap.String("mode", mode),
			zap.String("raw", raw),
		)
		return nil, false
	}

	return obj, true
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
