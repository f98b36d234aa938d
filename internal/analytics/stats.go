package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"tabledash/internal/models"
)

const (
	FoodCostOnTarget  = "on target"
	FoodCostAttention = "attention"
)

// DashboardStats is the headline block of the operator dashboard: the
// period's revenue, client count and average ticket, each with its trend
// against the immediately preceding window, plus the catalog-wide food cost.
type DashboardStats struct {
	Period        string          `json:"period"`
	Revenue       decimal.Decimal `json:"revenue"`
	RevenueTrend  Trend           `json:"revenue_trend"`
	Clients       int             `json:"clients"`
	ClientsTrend  Trend           `json:"clients_trend"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	TicketTrend   Trend           `json:"ticket_trend"`
	FoodCost      FoodCostStatus  `json:"food_cost"`
}

// FoodCostStatus reports the mean cost/price ratio across the active
// catalog. IsUp means "good": the mean is at or under the target.
type FoodCostStatus struct {
	Pct    float64 `json:"pct"`
	Target float64 `json:"target"`
	Status string  `json:"status"`
	IsUp   bool    `json:"is_up"`
}

type periodTotals struct {
	revenue decimal.Decimal
	clients int
	ticket  decimal.Decimal
}

// aggregateOrders folds completed orders into revenue, client count and
// average ticket. Each order counts as exactly one client; the ticket is 0
// when there are no orders.
func aggregateOrders(orders []models.Order) periodTotals {
	t := periodTotals{revenue: decimal.Zero, ticket: decimal.Zero}
	for _, o := range orders {
		t.revenue = t.revenue.Add(o.Total)
	}
	t.clients = len(orders)
	if t.clients > 0 {
		t.ticket = t.revenue.Div(decimal.NewFromInt(int64(t.clients))).Round(2)
	}
	return t
}

// productFoodCostPct returns the cost/price ratio as a percentage. A product
// without a positive price has no defined ratio and reports ok=false; it is
// excluded from catalog means so NaN/Inf never reaches a result.
func productFoodCostPct(p models.Product) (float64, bool) {
	if !p.Price.IsPositive() {
		return 0, false
	}
	return p.Cost.Div(p.Price).InexactFloat64() * 100, true
}

// catalogFoodCostPct is the arithmetic mean ratio over all priced products,
// 0 for an empty catalog.
func catalogFoodCostPct(products []models.Product) float64 {
	sum := 0.0
	n := 0
	for _, p := range products {
		pct, ok := productFoodCostPct(p)
		if !ok {
			continue
		}
		sum += pct
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// GetDashboardStats aggregates the period window and its predecessor, then
// attaches the food-cost status computed over the full active catalog
// (food cost is deliberately not time-windowed).
func (e *Engine) GetDashboardStats(ctx context.Context, ownerID string, period Period) (*DashboardStats, error) {
	r, err := e.restaurant(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	w := ResolveWindow(period, e.now())
	current, err := e.Store.ListCompletedOrders(ctx, r.ID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	previous, err := e.Store.ListCompletedOrders(ctx, r.ID, w.PrevStart, w.PrevEnd)
	if err != nil {
		return nil, err
	}
	products, err := e.Store.ListProducts(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	cur := aggregateOrders(current)
	prev := aggregateOrders(previous)

	target := e.foodCostTarget(r)
	pct := catalogFoodCostPct(products)
	status := FoodCostOnTarget
	onTarget := pct <= target
	if !onTarget {
		status = FoodCostAttention
	}

	return &DashboardStats{
		Period:        string(period),
		Revenue:       cur.revenue,
		RevenueTrend:  computeTrend(cur.revenue, prev.revenue),
		Clients:       cur.clients,
		ClientsTrend:  computeTrendInt(cur.clients, prev.clients),
		AverageTicket: cur.ticket,
		TicketTrend:   computeTrend(cur.ticket, prev.ticket),
		FoodCost: FoodCostStatus{
			Pct:    pct,
			Target: target,
			Status: status,
			IsUp:   onTarget,
		},
	}, nil
}
