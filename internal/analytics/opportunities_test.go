package analytics

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"tabledash/internal/models"
)

func TestGetOpportunities_GemPromotion(t *testing.T) {
	s := ownerStore()
	// margin 66.7%, sales 10 → promotion candidate worth 30 × 50 = 1500.
	s.products = []models.Product{mkProduct("p1", "Tartare", 30, 10, 10)}

	got, err := newTestEngine(s).GetOpportunities(context.Background(), "u1")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(got) != 1 {
		t.Fatalf("opportunities=%d want 1", len(got))
	}
	o := got[0]
	if o.Kind != OpportunityGemPromotion {
		t.Fatalf("kind=%q want gem_promotion", o.Kind)
	}
	if !o.Potential.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("potential=%s want 1500", o.Potential)
	}
	if len(o.Products) != 1 || o.Products[0] != "Tartare" {
		t.Fatalf("products=%v want [Tartare]", o.Products)
	}
}

func TestGetOpportunities_GemPromotionExcludesSellers(t *testing.T) {
	s := ownerStore()
	s.products = []models.Product{
		mkProduct("p1", "Slow", 30, 10, 10),   // candidate
		mkProduct("p2", "Moving", 30, 10, 20), // sales not under 20
		mkProduct("p3", "Cheap", 30, 25, 5),   // margin not over 60
	}

	got, err := newTestEngine(s).GetOpportunities(context.Background(), "u1")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(got) != 1 {
		t.Fatalf("opportunities=%d want 1", len(got))
	}
	if len(got[0].Products) != 1 || got[0].Products[0] != "Slow" {
		t.Fatalf("products=%v want [Slow]", got[0].Products)
	}
}

func TestGetOpportunities_CapacityCutoff(t *testing.T) {
	s := ownerStore()
	s.restaurantsByOwner["u1"].Tables = 15

	got, err := newTestEngine(s).GetOpportunities(context.Background(), "u1")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	// Empty catalog and a large floor: exactly the capacity entry.
	if len(got) != 1 {
		t.Fatalf("opportunities=%d want 1", len(got))
	}
	o := got[0]
	if o.Kind != OpportunityCapacity {
		t.Fatalf("kind=%q want capacity", o.Kind)
	}
	if !o.Potential.Equal(decimal.NewFromInt(1200)) {
		t.Fatalf("potential=%s want fixed 1200", o.Potential)
	}
}

func TestGetOpportunities_NoCapacityAtTenTables(t *testing.T) {
	s := ownerStore()
	s.restaurantsByOwner["u1"].Tables = 10

	got, err := newTestEngine(s).GetOpportunities(context.Background(), "u1")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("opportunities=%v want none: 10 tables is at the cutoff, not above", got)
	}
}
