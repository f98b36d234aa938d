package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a menu item with its cumulative performance counters. Sales and
// TotalRevenue are maintained by the order path; Popularity is set at import
// time on a 0-10 scale. Price should be positive but is not enforced
// upstream, so every consumer guards the zero-price case.
type Product struct {
	ID           string          `gorm:"primaryKey;type:text" json:"id"`
	RestaurantID string          `gorm:"type:text;index;not null" json:"restaurant_id"`
	Name         string          `gorm:"type:text;not null" json:"name"`
	Category     string          `gorm:"type:varchar(50);index" json:"category"`
	Price        decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"price"`
	Cost         decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"cost"`
	Sales        int             `gorm:"not null;default:0" json:"sales"`
	TotalRevenue decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0" json:"total_revenue"`
	Popularity   int             `gorm:"not null;default:0" json:"popularity"`
	Active       bool            `gorm:"not null;default:true;index" json:"active"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
