package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Trend is a period-over-period percentage delta. IsUp is strict: a flat
// value is not "up". Label always carries an explicit sign for non-negative
// values ("+4.2%", "+0.0%", "-3.1%").
type Trend struct {
	Pct   float64 `json:"pct"`
	Label string  `json:"label"`
	IsUp  bool    `json:"is_up"`
}

func computeTrend(current, previous decimal.Decimal) Trend {
	pct := 0.0
	if previous.IsPositive() {
		pct = current.Sub(previous).Div(previous).InexactFloat64() * 100
	}
	return Trend{
		Pct:   pct,
		Label: formatTrendPct(pct),
		IsUp:  current.GreaterThan(previous),
	}
}

func computeTrendInt(current, previous int) Trend {
	return computeTrend(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)))
}

func formatTrendPct(pct float64) string {
	return fmt.Sprintf("%+.1f%%", pct)
}
