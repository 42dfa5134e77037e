package database

import (
	"log"

	"github.com/ekozlova/shareit/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.ItemRequest{},
		&models.Item{},
		&models.Booking{},
		&models.Comment{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Covers both "my bookings" listings and the per-item last/next lookups.
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_booker_start
		ON bookings (booker_id, start_date DESC)
	`)
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_item_dates
		ON bookings (item_id, start_date, end_date)
	`)

	return db
}
