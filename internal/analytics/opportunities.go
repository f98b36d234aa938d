package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	OpportunityGemPromotion = "gem_promotion"
	OpportunityCapacity     = "capacity"

	// gemPromoMaxSales: high-margin products selling under this volume are
	// promotion candidates.
	gemPromoMaxSales = 20

	// capacityMinTables: above this table count a reservation system is
	// worth suggesting. A hard cutoff, not a scaled estimate.
	capacityMinTables = 10
)

// capacityPotential is the fixed value attached to the reservation-system
// suggestion.
var capacityPotential = decimal.NewFromInt(1200)

type Opportunity struct {
	Kind        string          `json:"kind"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Potential   decimal.Decimal `json:"potential"`
	Products    []string        `json:"products,omitempty"`
}

// GetOpportunities surfaces actionable revenue moves: under-sold gems worth
// promoting, and a reservation system once the floor is large enough.
func (e *Engine) GetOpportunities(ctx context.Context, ownerID string) ([]Opportunity, error) {
	r, err := e.restaurant(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	products, err := e.Store.ListProducts(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	opportunities := []Opportunity{}

	potential := decimal.Zero
	var names []string
	for _, p := range products {
		if marginPct(p) > fixedMarginHighPct && p.Sales < gemPromoMaxSales {
			potential = potential.Add(p.Price.Mul(decimal.NewFromInt(promoTargetUnits)))
			names = append(names, p.Name)
		}
	}
	if len(names) > 0 {
		opportunities = append(opportunities, Opportunity{
			Kind:        OpportunityGemPromotion,
			Title:       "Promote high-margin slow movers",
			Description: fmt.Sprintf("%d high-margin products sell under %d units; a push to %d units each is worth the listed potential", len(names), gemPromoMaxSales, promoTargetUnits),
			Potential:   potential,
			Products:    names,
		})
	}

	if r.Tables > capacityMinTables {
		opportunities = append(opportunities, Opportunity{
			Kind:        OpportunityCapacity,
			Title:       "Add a reservation system",
			Description: fmt.Sprintf("With %d tables, reservations would smooth seating and recover lost covers", r.Tables),
			Potential:   capacityPotential,
		})
	}

	return opportunities, nil
}
