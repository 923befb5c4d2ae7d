package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the constraints the booking flow depends on
// for correctness under concurrency. AutoMigrate creates the unique
// indexes declared in model tags; the statements here are a safety net
// for databases migrated before those tags existed, plus performance
// indexes for the hot availability query.
func MigrateConstraints(db *gorm.DB) error {
	// At most one booking may claim a (show, seat) pair
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_seats_show_seat
		ON booking_seats (show_id, seat_label);
	`).Error
	if err != nil {
		return err
	}

	// Booking codes are globally unique
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_booking_code
		ON bookings (booking_code);
	`).Error
	if err != nil {
		return err
	}

	// Availability reads scan a show's seats
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_booking_seats_show_id
		ON booking_seats (show_id);
	`).Error
	if err != nil {
		return err
	}

	// Movie detail groups shows by theater
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_shows_movie_time
		ON shows (movie_id, show_time);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
