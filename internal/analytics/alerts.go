package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"

	AlertFoodCostSpike = "food_cost_spike"
	AlertRevenueGap    = "revenue_gap"

	// foodCostSpikePct is the per-product ceiling above which a critical
	// alert fires, independent of the restaurant's own target.
	foodCostSpikePct = 35
)

// revenueGapRatio: cumulative product revenue under 70% of the goal raises a
// warning.
var revenueGapRatio = decimal.NewFromFloat(0.7)

type Alert struct {
	Severity  string `json:"severity"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	ProductID string `json:"product_id,omitempty"`
}

// GetAlerts evaluates the threshold rules over the current catalog and
// returns critical alerts before warnings. The food-cost rule reports the
// first offender in catalog order, not necessarily the worst one.
func (e *Engine) GetAlerts(ctx context.Context, ownerID string) ([]Alert, error) {
	r, err := e.restaurant(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	products, err := e.Store.ListProducts(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	alerts := []Alert{}

	for _, p := range products {
		pct, ok := productFoodCostPct(p)
		if !ok || pct <= foodCostSpikePct {
			continue
		}
		alerts = append(alerts, Alert{
			Severity:  SeverityCritical,
			Kind:      AlertFoodCostSpike,
			Message:   fmt.Sprintf("Food cost of %s is at %.1f%%, above the %d%% ceiling", p.Name, pct, foodCostSpikePct),
			ProductID: p.ID,
		})
		break
	}

	goal := e.revenueGoal(r)
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.TotalRevenue)
	}
	if goal.IsPositive() && total.LessThan(goal.Mul(revenueGapRatio)) {
		// The shortfall is recomputed from the actual ratio rather than
		// hard-wired to the 30% implied by the 0.7 threshold.
		shortfall := decimal.NewFromInt(100).Sub(total.Div(goal).Mul(decimal.NewFromInt(100)))
		alerts = append(alerts, Alert{
			Severity: SeverityWarning,
			Kind:     AlertRevenueGap,
			Message:  fmt.Sprintf("Revenue is %s%% below the %s goal", shortfall.Round(0), goal.Round(0)),
		})
	}

	return alerts, nil
}
