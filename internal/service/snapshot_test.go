package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tabledash/internal/analytics"
	"tabledash/internal/models"
)

// snapshotStub is a test-only in-memory store.Store capturing writes.
type snapshotStub struct {
	restaurants []models.Restaurant
	orders      []models.Order
	products    []models.Product
	failOwner   string

	snapshots []models.DailySnapshot
	alerts    []models.AlertRecord
}

func (s *snapshotStub) GetRestaurantByOwner(ctx context.Context, ownerID string) (*models.Restaurant, error) {
	if s.failOwner != "" && ownerID == s.failOwner {
		return nil, errors.New("stub: owner lookup failed")
	}
	for i := range s.restaurants {
		if s.restaurants[i].OwnerID == ownerID {
			return &s.restaurants[i], nil
		}
	}
	return nil, nil
}

func (s *snapshotStub) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.restaurants, nil
}

func (s *snapshotStub) ListCompletedOrders(ctx context.Context, restaurantID string, from, to time.Time) ([]models.Order, error) {
	var out []models.Order
	for _, o := range s.orders {
		if o.RestaurantID != restaurantID || o.Status != models.OrderStatusCompleted {
			continue
		}
		if o.OrderDate.Before(from) || !o.OrderDate.Before(to) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *snapshotStub) ListProducts(ctx context.Context, restaurantID string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.RestaurantID == restaurantID && p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *snapshotStub) ListTopProductsBySales(ctx context.Context, restaurantID string, limit int) ([]models.Product, error) {
	return s.ListProducts(ctx, restaurantID)
}

func (s *snapshotStub) UpsertDailySnapshot(ctx context.Context, item *models.DailySnapshot) error {
	s.snapshots = append(s.snapshots, *item)
	return nil
}

func (s *snapshotStub) InsertAlertRecord(ctx context.Context, item *models.AlertRecord) error {
	s.alerts = append(s.alerts, *item)
	return nil
}

func TestSnapshotService_RunOnce(t *testing.T) {
	stub := &snapshotStub{
		restaurants: []models.Restaurant{
			{ID: "r1", OwnerID: "u1", Name: "Bistro"},
		},
		orders: []models.Order{
			{
				ID:           "o1",
				RestaurantID: "r1",
				Total:        decimal.NewFromInt(120),
				Status:       models.OrderStatusCompleted,
				OrderDate:    time.Now().UTC(),
			},
		},
		products: []models.Product{
			{
				ID:           "p1",
				RestaurantID: "r1",
				Name:         "Wagyu",
				Price:        decimal.NewFromInt(10),
				Cost:         decimal.NewFromInt(5), // 50% ratio → spike alert
				Active:       true,
			},
		},
	}
	engine := &analytics.Engine{Store: stub, Config: analytics.DefaultConfig()}
	svc := &SnapshotService{Store: stub, Engine: engine}

	if err := svc.RunOnce(context.Background()); err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(stub.snapshots) != 1 {
		t.Fatalf("snapshots=%d want 1", len(stub.snapshots))
	}
	snap := stub.snapshots[0]
	if snap.RestaurantID != "r1" {
		t.Fatalf("restaurant=%s want r1", snap.RestaurantID)
	}
	if !snap.Revenue.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("revenue=%s want 120", snap.Revenue)
	}
	if snap.Clients != 1 {
		t.Fatalf("clients=%d want 1", snap.Clients)
	}
	// Spike plus revenue gap: two alert rows, count recorded on the snapshot.
	if snap.AlertCount != 2 {
		t.Fatalf("alertCount=%d want 2", snap.AlertCount)
	}
	if len(stub.alerts) != 2 {
		t.Fatalf("alert rows=%d want 2", len(stub.alerts))
	}
	if stub.alerts[0].Severity != "critical" {
		t.Fatalf("first alert severity=%s want critical", stub.alerts[0].Severity)
	}
}

func TestSnapshotService_SkipsFailingRestaurant(t *testing.T) {
	stub := &snapshotStub{
		restaurants: []models.Restaurant{
			{ID: "r1", OwnerID: "u1", Name: "A"},
			{ID: "r2", OwnerID: "u2", Name: "B"},
		},
		failOwner: "u1",
	}
	engine := &analytics.Engine{Store: stub, Config: analytics.DefaultConfig()}
	svc := &SnapshotService{Store: stub, Engine: engine}

	if err := svc.RunOnce(context.Background()); err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(stub.snapshots) != 1 || stub.snapshots[0].RestaurantID != "r2" {
		t.Fatalf("snapshots=%v want only r2", stub.snapshots)
	}
}
