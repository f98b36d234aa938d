package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// DailySnapshot is a derived row written by the snapshot job, one per
// restaurant per calendar day. The engine itself never reads it back; it
// exists for reporting and historical charts.
type DailySnapshot struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	RestaurantID string          `gorm:"type:text;not null;uniqueIndex:idx_snapshot_day" json:"restaurant_id"`
	Date         time.Time       `gorm:"type:date;not null;uniqueIndex:idx_snapshot_day" json:"date"`
	Revenue      decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"revenue"`
	Clients      int             `gorm:"not null" json:"clients"`
	AvgTicket    decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"avg_ticket"`
	FoodCostPct  float64         `gorm:"not null" json:"food_cost_pct"`
	AlertCount   int             `gorm:"not null;default:0" json:"alert_count"`
	Payload      datatypes.JSON  `gorm:"type:jsonb" json:"payload,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (DailySnapshot) TableName() string {
	return "daily_snapshots"
}

// AlertRecord keeps a history of alerts emitted by the snapshot job.
type AlertRecord struct {
	ID           uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	RestaurantID string         `gorm:"type:text;index;not null" json:"restaurant_id"`
	Severity     string         `gorm:"type:varchar(20);not null;index" json:"severity"`
	Kind         string         `gorm:"type:varchar(40);not null;index" json:"kind"`
	Message      string         `gorm:"type:text;not null" json:"message"`
	Payload      datatypes.JSON `gorm:"type:jsonb" json:"payload,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index" json:"created_at"`
}

func (AlertRecord) TableName() string {
	return "alert_records"
}
