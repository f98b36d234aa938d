package analytics

import (
	"context"
	"sort"
	"time"

	"tabledash/internal/models"
)

// stubStore is a test-only in-memory implementation of store.Store. It also
// records which methods were called so tests can assert that a NotFound stops
// further reads.
type stubStore struct {
	restaurantsByOwner map[string]*models.Restaurant
	orders             []models.Order
	products           []models.Product

	calls []string
}

func (s *stubStore) GetRestaurantByOwner(ctx context.Context, ownerID string) (*models.Restaurant, error) {
	s.calls = append(s.calls, "GetRestaurantByOwner")
	if s.restaurantsByOwner == nil {
		return nil, nil
	}
	return s.restaurantsByOwner[ownerID], nil
}

func (s *stubStore) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	s.calls = append(s.calls, "ListRestaurants")
	var out []models.Restaurant
	for _, r := range s.restaurantsByOwner {
		out = append(out, *r)
	}
	return out, nil
}

func (s *stubStore) ListCompletedOrders(ctx context.Context, restaurantID string, from, to time.Time) ([]models.Order, error) {
	s.calls = append(s.calls, "ListCompletedOrders")
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
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.Before(out[j].OrderDate) })
	return out, nil
}

func (s *stubStore) ListProducts(ctx context.Context, restaurantID string) ([]models.Product, error) {
	s.calls = append(s.calls, "ListProducts")
	var out []models.Product
	for _, p := range s.products {
		if p.RestaurantID == restaurantID && p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubStore) ListTopProductsBySales(ctx context.Context, restaurantID string, limit int) ([]models.Product, error) {
	s.calls = append(s.calls, "ListTopProductsBySales")
	out, _ := s.ListProducts(ctx, restaurantID)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sales > out[j].Sales })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubStore) UpsertDailySnapshot(ctx context.Context, item *models.DailySnapshot) error {
	s.calls = append(s.calls, "UpsertDailySnapshot")
	return nil
}

func (s *stubStore) InsertAlertRecord(ctx context.Context, item *models.AlertRecord) error {
	s.calls = append(s.calls, "InsertAlertRecord")
	return nil
}
