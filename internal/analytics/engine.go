package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tabledash/internal/config"
	"tabledash/internal/models"
	"tabledash/internal/store"
)

// ErrRestaurantNotFound is returned by every entry point when the owner has
// no restaurant profile yet. Callers surface it as "complete onboarding
// first" rather than a generic failure.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// Config are the engine-level defaults applied when a restaurant carries no
// settings row of its own. Zero-valued fields are backfilled by Normalize.
type Config struct {
	FoodCostTargetPct    float64
	RevenueGoal          decimal.Decimal
	DefaultAvgTicket     decimal.Decimal
	ForecastConfidence   int
	ForecastLookbackDays int
	TrendSurgePct        float64
	TopProductsLimit     int
}

func DefaultConfig() Config {
	return Config{
		FoodCostTargetPct:    30,
		RevenueGoal:          decimal.NewFromInt(50000),
		DefaultAvgTicket:     decimal.NewFromInt(25),
		ForecastConfidence:   85,
		ForecastLookbackDays: 30,
		TrendSurgePct:        15,
		TopProductsLimit:     5,
	}
}

// ConfigFrom maps the app-level analytics section onto an engine Config.
func ConfigFrom(cfg config.AnalyticsConfig) Config {
	out := Config{
		FoodCostTargetPct:    cfg.FoodCostTargetPct,
		RevenueGoal:          decimal.NewFromFloat(cfg.RevenueGoal),
		DefaultAvgTicket:     decimal.NewFromFloat(cfg.DefaultAvgTicket),
		ForecastConfidence:   cfg.ForecastConfidence,
		ForecastLookbackDays: cfg.ForecastLookbackDays,
		TrendSurgePct:        cfg.TrendSurgePct,
		TopProductsLimit:     cfg.TopProductsLimit,
	}
	return out.Normalize()
}

func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.FoodCostTargetPct <= 0 {
		c.FoodCostTargetPct = def.FoodCostTargetPct
	}
	if !c.RevenueGoal.IsPositive() {
		c.RevenueGoal = def.RevenueGoal
	}
	if !c.DefaultAvgTicket.IsPositive() {
		c.DefaultAvgTicket = def.DefaultAvgTicket
	}
	if c.ForecastConfidence <= 0 {
		c.ForecastConfidence = def.ForecastConfidence
	}
	if c.ForecastLookbackDays <= 0 {
		c.ForecastLookbackDays = def.ForecastLookbackDays
	}
	if c.TrendSurgePct <= 0 {
		c.TrendSurgePct = def.TrendSurgePct
	}
	if c.TopProductsLimit <= 0 {
		c.TopProductsLimit = def.TopProductsLimit
	}
	return c
}

// Engine is the stateless analytics layer. Every entry point loads a fresh
// snapshot through Store, derives its result, and holds nothing between
// calls. Reads are not transactional; a slightly inconsistent snapshot under
// concurrent writes is accepted since results feed an operator dashboard,
// not a ledger.
type Engine struct {
	Store  store.Store
	Config Config
	Logger *zap.Logger

	// NowFunc overrides the clock in tests. Nil means time.Now().UTC().
	NowFunc func() time.Time
}

func (e *Engine) now() time.Time {
	if e != nil && e.NowFunc != nil {
		return e.NowFunc()
	}
	return time.Now().UTC()
}

// restaurant resolves the owner's profile or fails with
// ErrRestaurantNotFound before any aggregation happens.
func (e *Engine) restaurant(ctx context.Context, ownerID string) (*models.Restaurant, error) {
	r, err := e.Store.GetRestaurantByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRestaurantNotFound
	}
	return r, nil
}

// foodCostTarget prefers the restaurant's own settings over the engine
// defaults.
func (e *Engine) foodCostTarget(r *models.Restaurant) float64 {
	if r != nil && r.Settings != nil && r.Settings.FoodCostTarget > 0 {
		return r.Settings.FoodCostTarget
	}
	return e.Config.FoodCostTargetPct
}

func (e *Engine) revenueGoal(r *models.Restaurant) decimal.Decimal {
	if r != nil && r.Settings != nil && r.Settings.RevenueGoal.IsPositive() {
		return r.Settings.RevenueGoal
	}
	return e.Config.RevenueGoal
}

func (e *Engine) avgTicket(r *models.Restaurant) decimal.Decimal {
	if r != nil && r.AvgTicketTarget.IsPositive() {
		return r.AvgTicketTarget
	}
	return e.Config.DefaultAvgTicket
}
