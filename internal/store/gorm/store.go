package gormstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tabledash/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetRestaurantByOwner(ctx context.Context, ownerID string) (*models.Restaurant, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}
	var item models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("Settings").
		Where("owner_id = ?", ownerID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListCompletedOrders(ctx context.Context, restaurantID string, from, to time.Time) ([]models.Order, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Order
	err := s.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Where("status = ?", models.OrderStatusCompleted).
		Where("order_date >= ? AND order_date < ?", from, to).
		Order("order_date asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListProducts(ctx context.Context, restaurantID string) ([]models.Product, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Product
	err := s.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Where("active = ?", true).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListTopProductsBySales(ctx context.Context, restaurantID string, limit int) ([]models.Product, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}
	var items []models.Product
	err := s.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Where("active = ?", true).
		Order("sales desc").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpsertDailySnapshot(ctx context.Context, item *models.DailySnapshot) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "restaurant_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"revenue",
			"clients",
			"avg_ticket",
			"food_cost_pct",
			"alert_count",
			"payload",
			"updated_at",
		}),
	}).Create(item).Error
}

func (s *Store) InsertAlertRecord(ctx context.Context, item *models.AlertRecord) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}
