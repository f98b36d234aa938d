package analytics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"tabledash/internal/models"
)

// Profitability quadrants. Policy A (fixed thresholds) additionally uses the
// standard bucket for products in neither extreme; Policy B (catalog-relative)
// always lands in one of the four quadrants.
const (
	ClassStar     = "star"
	ClassGem      = "gem"
	ClassPopular  = "popular"
	ClassDog      = "dog"
	ClassStandard = "standard"
)

const (
	fixedMarginHighPct = 60
	fixedMarginLowPct  = 40
	fixedSalesHigh     = 50
	fixedTrendSales    = 30

	// promoTargetUnits treats 50 units as an achievable promotional sales
	// target when estimating quadrant opportunities.
	promoTargetUnits = 50
)

// marginPct is (price − cost) / price × 100. A product without a positive
// price has margin 0 (and so classifies as a dog).
func marginPct(p models.Product) float64 {
	if !p.Price.IsPositive() {
		return 0
	}
	return p.Price.Sub(p.Cost).Div(p.Price).InexactFloat64() * 100
}

// RankedProduct is a Policy A result row for the top-products ranking.
type RankedProduct struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	Sales     int             `json:"sales"`
	Revenue   decimal.Decimal `json:"revenue"`
	MarginPct float64         `json:"margin_pct"`
	Class     string          `json:"class"`
	Trend     string          `json:"trend"`
}

func classifyFixed(margin float64, sales int) string {
	switch {
	case margin > fixedMarginHighPct && sales > fixedSalesHigh:
		return ClassStar
	case margin > fixedMarginHighPct:
		return ClassGem
	case margin <= fixedMarginLowPct && sales > fixedSalesHigh:
		return ClassPopular
	case margin <= fixedMarginLowPct:
		return ClassDog
	default:
		return ClassStandard
	}
}

// GetTopProducts ranks the restaurant's best sellers and classifies each one
// under the fixed-threshold policy. The trend tag is a coarse volume
// heuristic (sales > 30 counts as "up"), not a period comparison.
func (e *Engine) GetTopProducts(ctx context.Context, ownerID string, limit int) ([]RankedProduct, error) {
	r, err := e.restaurant(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = e.Config.TopProductsLimit
	}
	products, err := e.Store.ListTopProductsBySales(ctx, r.ID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]RankedProduct, 0, len(products))
	for _, p := range products {
		margin := marginPct(p)
		trend := "down"
		if p.Sales > fixedTrendSales {
			trend = "up"
		}
		out = append(out, RankedProduct{
			ID:        p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Price:     p.Price,
			Cost:      p.Cost,
			Sales:     p.Sales,
			Revenue:   p.TotalRevenue,
			MarginPct: margin,
			Class:     classifyFixed(margin, p.Sales),
			Trend:     trend,
		})
	}
	return out, nil
}

// MatrixProduct is one menu item positioned in the engineering matrix.
type MatrixProduct struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	Sales     int             `json:"sales"`
	Revenue   decimal.Decimal `json:"revenue"`
	MarginPct float64         `json:"margin_pct"`
}

// QuadrantAction is the suggested move for a quadrant with its estimated
// value. Dog removal is qualitative, so its potential stays zero.
type QuadrantAction struct {
	Action    string          `json:"action"`
	Potential decimal.Decimal `json:"potential"`
}

// MenuMatrix is the Policy B result: the whole catalog split against its own
// average margin and average sales volume.
type MenuMatrix struct {
	AvgMarginPct  float64         `json:"avg_margin_pct"`
	AvgSales      float64         `json:"avg_sales"`
	Stars         []MatrixProduct `json:"stars"`
	Gems          []MatrixProduct `json:"gems"`
	Populars      []MatrixProduct `json:"populars"`
	Dogs          []MatrixProduct `json:"dogs"`
	GemAction     QuadrantAction  `json:"gem_action"`
	PopularAction QuadrantAction  `json:"popular_action"`
	DogAction     QuadrantAction  `json:"dog_action"`
}

// GetMenuMatrix classifies every active product relative to the catalog's
// own averages. Unlike the fixed policy there is no standard bucket: a
// product is above or at/below each average, nothing else.
func (e *Engine) GetMenuMatrix(ctx context.Context, ownerID string) (*MenuMatrix, error) {
	r, err := e.restaurant(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	products, err := e.Store.ListProducts(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	m := &MenuMatrix{
		Stars:    []MatrixProduct{},
		Gems:     []MatrixProduct{},
		Populars: []MatrixProduct{},
		Dogs:     []MatrixProduct{},
		GemAction: QuadrantAction{
			Action:    "promote gems to lift high-margin volume",
			Potential: decimal.Zero,
		},
		PopularAction: QuadrantAction{
			Action:    "raise popular prices by 5%",
			Potential: decimal.Zero,
		},
		DogAction: QuadrantAction{
			Action:    "consider removing dogs from the menu",
			Potential: decimal.Zero,
		},
	}
	if len(products) == 0 {
		return m, nil
	}

	marginSum := 0.0
	salesSum := 0
	margins := make([]float64, len(products))
	for i, p := range products {
		margins[i] = marginPct(p)
		marginSum += margins[i]
		salesSum += p.Sales
	}
	m.AvgMarginPct = marginSum / float64(len(products))
	m.AvgSales = float64(salesSum) / float64(len(products))

	for i, p := range products {
		row := MatrixProduct{
			ID:        p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Cost:      p.Cost,
			Sales:     p.Sales,
			Revenue:   p.TotalRevenue,
			MarginPct: margins[i],
		}
		marginAbove := margins[i] > m.AvgMarginPct
		salesAbove := float64(p.Sales) > m.AvgSales
		switch {
		case marginAbove && salesAbove:
			m.Stars = append(m.Stars, row)
		case marginAbove:
			m.Gems = append(m.Gems, row)
			m.GemAction.Potential = m.GemAction.Potential.Add(
				p.Price.Mul(decimal.NewFromInt(promoTargetUnits)))
		case salesAbove:
			m.Populars = append(m.Populars, row)
			// Marginal profit of a 5% price increase at current volume.
			m.PopularAction.Potential = m.PopularAction.Potential.Add(
				p.Price.Mul(decimal.NewFromFloat(0.05)).Mul(decimal.NewFromInt(int64(p.Sales))))
		default:
			m.Dogs = append(m.Dogs, row)
		}
	}

	byRevenue := func(rows []MatrixProduct) {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Revenue.GreaterThan(rows[j].Revenue)
		})
	}
	byRevenue(m.Stars)
	byRevenue(m.Dogs)
	sort.SliceStable(m.Gems, func(i, j int) bool {
		return m.Gems[i].MarginPct > m.Gems[j].MarginPct
	})
	sort.SliceStable(m.Populars, func(i, j int) bool {
		return m.Populars[i].Sales > m.Populars[j].Sales
	})

	return m, nil
}
