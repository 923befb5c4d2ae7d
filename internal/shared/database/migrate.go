package database

import (
	"cinebook/internal/bookings"
	"cinebook/internal/movies"
	"cinebook/internal/shows"
	"cinebook/internal/theaters"
	"cinebook/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4() defaults need the extension
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&users.User{},
		&movies.Movie{},
		&theaters.Theater{},
		&theaters.Screen{},
		&shows.Show{},
		&bookings.Booking{},
		&bookings.BookingSeat{},
	)
}
