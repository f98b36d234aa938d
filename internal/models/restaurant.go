package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Restaurant is the operator profile created once at onboarding. The
// analytics engine treats it as read-only; at most one row exists per owner.
type Restaurant struct {
	ID                string          `gorm:"primaryKey;type:text" json:"id"`
	OwnerID           string          `gorm:"type:text;uniqueIndex;not null" json:"owner_id"`
	Name              string          `gorm:"type:text;not null" json:"name"`
	Tables            int             `gorm:"not null;default:0" json:"tables"`
	AvgTicketTarget   decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0" json:"avg_ticket_target"`
	MonthlyFixedCosts decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0" json:"monthly_fixed_costs"`

	Settings *RestaurantSettings `gorm:"foreignKey:RestaurantID" json:"settings,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// RestaurantSettings holds per-restaurant analytics targets. The row is
// optional; when absent the engine falls back to the configured defaults
// (food-cost target 30%, revenue goal 50 000).
type RestaurantSettings struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	RestaurantID    string          `gorm:"type:text;uniqueIndex;not null" json:"restaurant_id"`
	RevenueGoal     decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0" json:"revenue_goal"`
	FoodCostTarget  float64         `gorm:"not null;default:0" json:"food_cost_target"`
	TableTurnTarget float64         `gorm:"not null;default:0" json:"table_turn_target"`
	Segment         string          `gorm:"type:varchar(50)" json:"segment"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (RestaurantSettings) TableName() string {
	return "restaurant_settings"
}
