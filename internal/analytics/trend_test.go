package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeTrend(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		wantPct  float64
		wantUp   bool
		wantLbl  string
	}{
		{"growth", 150, 100, 50, true, "+50.0%"},
		{"decline", 80, 100, -20, false, "-20.0%"},
		{"flat is not up", 100, 100, 0, false, "+0.0%"},
		{"zero previous yields zero pct", 50, 0, 0, true, "+0.0%"},
		{"both zero", 0, 0, 0, false, "+0.0%"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := computeTrend(decimal.NewFromFloat(tc.current), decimal.NewFromFloat(tc.previous))
			if got.Pct != tc.wantPct {
				t.Fatalf("pct=%v want %v", got.Pct, tc.wantPct)
			}
			if got.IsUp != tc.wantUp {
				t.Fatalf("isUp=%v want %v", got.IsUp, tc.wantUp)
			}
			if got.Label != tc.wantLbl {
				t.Fatalf("label=%q want %q", got.Label, tc.wantLbl)
			}
		})
	}
}
