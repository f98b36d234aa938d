package db

import (
	"tabledash/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.Restaurant{},
		&models.RestaurantSettings{},
		&models.Order{},
		&models.Product{},
		&models.DailySnapshot{},
		&models.AlertRecord{},
	)
}
