package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"tabledash/internal/models"
)

// DemandForecast is the next-day estimate built from day-of-week historical
// averages. Confidence is a fixed product constant, not a statistical
// interval.
type DemandForecast struct {
	Date             string          `json:"date"`
	Weekday          string          `json:"weekday"`
	EstimatedRevenue decimal.Decimal `json:"estimated_revenue"`
	EstimatedCovers  int             `json:"estimated_covers"`
	TrendPct         float64         `json:"trend_pct"`
	TrendLabel       string          `json:"trend_label"`
	Suggestion       string          `json:"suggestion"`
	TopProduct       string          `json:"top_product,omitempty"`
	Confidence       int             `json:"confidence"`
}

// GetDemandForecast estimates tomorrow's revenue as the mean of all orders
// on the same weekday within the lookback window. The trend compares the
// mean of the 4 most recent same-weekday orders against that full-window
// mean, so a recent shift shows up even when the long average is flat.
func (e *Engine) GetDemandForecast(ctx context.Context, ownerID string) (*DemandForecast, error) {
	r, err := e.restaurant(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := e.now()
	from := now.AddDate(0, 0, -e.Config.ForecastLookbackDays)
	orders, err := e.Store.ListCompletedOrders(ctx, r.ID, from, now)
	if err != nil {
		return nil, err
	}
	products, err := e.Store.ListProducts(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	tomorrow := now.AddDate(0, 0, 1)
	weekday := tomorrow.Weekday()

	// Orders arrive sorted by date ascending, so the bucket keeps recency
	// order and its tail is the recent sample.
	var bucket []models.Order
	for _, o := range orders {
		if o.OrderDate.Weekday() == weekday {
			bucket = append(bucket, o)
		}
	}

	estimate := decimal.Zero
	if len(bucket) > 0 {
		sum := decimal.Zero
		for _, o := range bucket {
			sum = sum.Add(o.Total)
		}
		estimate = sum.Div(decimal.NewFromInt(int64(len(bucket)))).Round(2)
	}

	trendPct := 0.0
	if recent := recentMean(bucket, 4); recent != nil && estimate.IsPositive() {
		trendPct = recent.Sub(estimate).Div(estimate).InexactFloat64() * 100
	}

	ticket := e.avgTicket(r)
	covers := 0
	if ticket.IsPositive() {
		covers = int(estimate.Div(ticket).Round(0).IntPart())
	}

	top := topSeller(products)

	return &DemandForecast{
		Date:             tomorrow.Format("2006-01-02"),
		Weekday:          weekday.String(),
		EstimatedRevenue: estimate,
		EstimatedCovers:  covers,
		TrendPct:         trendPct,
		TrendLabel:       formatTrendPct(trendPct),
		Suggestion:       buildSuggestion(trendPct, e.Config.TrendSurgePct, top),
		TopProduct:       top,
		Confidence:       e.Config.ForecastConfidence,
	}, nil
}

// recentMean averages the last n orders of the bucket, nil when empty.
func recentMean(bucket []models.Order, n int) *decimal.Decimal {
	if len(bucket) == 0 {
		return nil
	}
	if len(bucket) > n {
		bucket = bucket[len(bucket)-n:]
	}
	sum := decimal.Zero
	for _, o := range bucket {
		sum = sum.Add(o.Total)
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(bucket))))
	return &mean
}

func topSeller(products []models.Product) string {
	best := -1
	name := ""
	for _, p := range products {
		if p.Sales > best {
			best = p.Sales
			name = p.Name
		}
	}
	return name
}

func buildSuggestion(trendPct, surgePct float64, topProduct string) string {
	if topProduct == "" {
		topProduct = "your top sellers"
	}
	switch {
	case trendPct > surgePct:
		return fmt.Sprintf("Expect a surge: overstock %s and add floor staff", topProduct)
	case trendPct < -surgePct:
		return fmt.Sprintf("Expect a lull: reduce floor staff and prep specials around %s", topProduct)
	default:
		return fmt.Sprintf("Expect stable demand: keep normal staffing and stock of %s", topProduct)
	}
}
