package repository

import (
	"log"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&guestModel{},
		&roomModel{},
		&bookingModel{},
		&paymentModel{},
	)
}

// EnsureBookingConstraints installs the exclusion constraint that prevents
// two active bookings of the same room from overlapping. The in-process
// availability check is only an early reject; this constraint is the
// authoritative guard under concurrent writes.
//
// Exclusion constraints are PostgreSQL-only. On SQLite the application
// falls back to the availability check alone, which is fine for local
// development.
func EnsureBookingConstraints(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		log.Println("skipping booking exclusion constraint: not postgres")
		return nil
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}

	var count int64
	err := db.Raw(
		"SELECT COUNT(*) FROM pg_constraint WHERE conname = ?", "bookings_no_overlap",
	).Scan(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Exec(`
		ALTER TABLE bookings
		ADD CONSTRAINT bookings_no_overlap
		EXCLUDE USING gist (
			room_id WITH =,
			daterange(check_in::date, check_out::date, '[)') WITH &&
		)
		WHERE (status IN ('pending', 'confirmed'))
	`).Error
}
