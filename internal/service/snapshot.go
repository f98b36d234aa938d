package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"tabledash/internal/analytics"
	"tabledash/internal/models"
	"tabledash/internal/store"
)

// SnapshotService materializes each restaurant's daily stats and alerts into
// history rows. It runs from cron; the engine itself never reads these rows,
// so a failed run only loses one day of history, never dashboard correctness.
type SnapshotService struct {
	Store  store.Store
	Engine *analytics.Engine
	Logger *zap.Logger
}

// RunOnce snapshots every restaurant. Per-restaurant failures are logged and
// skipped so one broken tenant cannot starve the rest.
func (s *SnapshotService) RunOnce(ctx context.Context) error {
	if s == nil || s.Store == nil || s.Engine == nil {
		return nil
	}
	restaurants, err := s.Store.ListRestaurants(ctx)
	if err != nil {
		return err
	}
	for _, r := range restaurants {
		if err := s.snapshotOne(ctx, r); err != nil {
			if s.Logger != nil {
				s.Logger.Warn("snapshot failed",
					zap.String("restaurant_id", r.ID),
					zap.Error(err))
			}
		}
	}
	return nil
}

func (s *SnapshotService) snapshotOne(ctx context.Context, r models.Restaurant) error {
	stats, err := s.Engine.GetDashboardStats(ctx, r.OwnerID, analytics.PeriodToday)
	if err != nil {
		return err
	}
	alerts, err := s.Engine.GetAlerts(ctx, r.OwnerID)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]any{
		"revenue_trend": stats.RevenueTrend,
		"ticket_trend":  stats.TicketTrend,
		"alerts":        alerts,
	})
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	snap := &models.DailySnapshot{
		RestaurantID: r.ID,
		Date:         day,
		Revenue:      stats.Revenue,
		Clients:      stats.Clients,
		AvgTicket:    stats.AverageTicket,
		FoodCostPct:  stats.FoodCost.Pct,
		AlertCount:   len(alerts),
		Payload:      datatypes.JSON(payload),
	}
	if err := s.Store.UpsertDailySnapshot(ctx, snap); err != nil {
		return err
	}

	for _, a := range alerts {
		raw, err := json.Marshal(a)
		if err != nil {
			continue
		}
		rec := &models.AlertRecord{
			RestaurantID: r.ID,
			Severity:     a.Severity,
			Kind:         a.Kind,
			Message:      a.Message,
			Payload:      datatypes.JSON(raw),
		}
		if err := s.Store.InsertAlertRecord(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
