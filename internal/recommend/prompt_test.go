package recommend

import (
	"strings"
	"testing"

	"vendor-discovery-service/internal/domain"
)

func TestPeriodOf(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{4, "Malam"},
		{5, "Pagi"},
		{10, "Pagi"},
		{11, "Siang"},
		{14, "Siang"},
		{15, "Sore"},
		{17, "Sore"},
		{18, "Malam"},
		{23, "Malam"},
		{0, "Malam"},
	}

	for _, tt := range tests {
		if got := periodOf(tt.hour); got != tt.want {
			t.Errorf("periodOf(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestVendorLines(t *testing.T) {
	got := vendorLines(testVendors())
	want := "Warung A (minuman) - 300m, Warung B (gorengan) - 800m"
	if got != want {
		t.Fatalf("vendorLines = %q, want %q", got, want)
	}

	if vendorLines(nil) != "" {
		t.Fatal("empty slice must render as empty string")
	}
}

func TestMarketPromptEmptyCompetitors(t *testing.T) {
	c, err := domain.NewCoordinate(-6.2, 106.816666)
	if err != nil {
		t.Fatalf("coordinate: %v", err)
	}
	p := marketPrompt("minuman", c, nil)
	if p == "" {
		t.Fatal("prompt must not be empty")
	}
	if !strings.Contains(p, "minuman") || !strings.Contains(p, "tidak ada kompetitor") {
		t.Fatalf("prompt missing expected fragments: %q", p)
	}
}
