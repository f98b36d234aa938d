package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusCompleted = "completed"

// Order is a single ticket written by the order-taking path. Only completed
// orders participate in analytics; a completed order is immutable here.
type Order struct {
	ID           string          `gorm:"primaryKey;type:text" json:"id"`
	RestaurantID string          `gorm:"type:text;index;not null" json:"restaurant_id"`
	Total        decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"total"`
	Status       string          `gorm:"type:varchar(20);not null;index" json:"status"`
	OrderDate    time.Time       `gorm:"type:timestamptz;not null;index" json:"order_date"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}
