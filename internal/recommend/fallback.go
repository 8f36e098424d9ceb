package recommend

import (
	"fmt"
	"strings"

	"vendor-discovery-service/internal/domain"
)

// Placeholder vendor name when the nearby list is empty on the fallback path.
const fallbackVendorName = "Pedagang Terdekat"

// exploreFallback is the canned buyer result for an empty nearby list.
// No generation call precedes it.
func exploreFallback() domain.Recommendation {
	return domain.Recommendation{
		Item:   "Jelajahi area sekitar",
		Reason: "Belum ada pedagang terdekat saat ini",
		Source: domain.SourceFallback,
	}
}

// buyerFallback picks an item from the weather rule table, evaluated
// top-down with first match winning: rain, then heat, then cool, then the
// default. The vendor is always the nearest one since the list arrives
// distance-sorted.
func buyerFallback(w domain.WeatherSnapshot, nearby []domain.VendorProximity) domain.Recommendation {
	name := fallbackVendorName
	if len(nearby) > 0 {
		name = nearby[0].Vendor.Name
	}

	desc := strings.ToLower(w.Description)

	switch {
	case strings.Contains(desc, "hujan") || strings.Contains(desc, "rain"):
		return domain.Recommendation{
			Item:       "Gorengan & Teh Hangat",
			Reason:     "Cuaca hujan, cocok dengan makanan hangat",
			VendorName: name,
			Source:     domain.SourceFallback,
		}
	case w.TemperatureC > 30:
		return domain.Recommendation{
			Item:       "Es Teh/Es Jeruk",
			Reason:     fmt.Sprintf("Cuaca panas (%.0f derajat), minuman dingin sangat menyegarkan", w.TemperatureC),
			VendorName: name,
			Source:     domain.SourceFallback,
		}
	case w.TemperatureC < 25:
		return domain.Recommendation{
			Item:       "Kopi/Teh Hangat",
			Reason:     fmt.Sprintf("Cuaca sejuk (%.0f derajat), minuman hangat pas untuk menghangatkan badan", w.TemperatureC),
			VendorName: name,
			Source:     domain.SourceFallback,
		}
	default:
		return domain.Recommendation{
			Item:       "Es Teh Manis",
			Reason:     "Cuaca nyaman untuk minuman segar",
			VendorName: name,
			Source:     domain.SourceFallback,
		}
	}
}

func insightFallback(period string) domain.PositioningInsight {
	return domain.PositioningInsight{
		Message:     fmt.Sprintf("Selamat %s! Coba keliling ke area perumahan atau tongkrongan terdekat.", period),
		TargetPlace: "Area Perumahan/Taman",
		Source:      domain.SourceFallback,
	}
}

func marketFallback() domain.MarketAnalysis {
	return domain.MarketAnalysis{
		Saturated:   "Tidak dapat menganalisa data saat ini",
		Opportunity: "Cobalah berjualan minuman segar atau camilan ringan",
		Strategy:    "Fokus pada pelayanan yang ramah dan kebersihan",
		Score:       50,
		Source:      domain.SourceFallback,
	}
}
