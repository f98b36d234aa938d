package store

import (
	"context"
	"time"

	"tabledash/internal/models"
)

// Store is the data-access boundary of the analytics engine. The engine only
// ever reads through it; the two write methods exist for the snapshot job.
// GetRestaurantByOwner returns (nil, nil) when no profile exists so callers
// can distinguish "not onboarded" from a store failure.
type Store interface {
	GetRestaurantByOwner(ctx context.Context, ownerID string) (*models.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)

	// ListCompletedOrders returns completed orders with OrderDate in [from, to).
	ListCompletedOrders(ctx context.Context, restaurantID string, from, to time.Time) ([]models.Order, error)

	ListProducts(ctx context.Context, restaurantID string) ([]models.Product, error)
	ListTopProductsBySales(ctx context.Context, restaurantID string, limit int) ([]models.Product, error)

	UpsertDailySnapshot(ctx context.Context, item *models.DailySnapshot) error
	InsertAlertRecord(ctx context.Context, item *models.AlertRecord) error
}
