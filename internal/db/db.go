package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/prestine-booking/internal/config"
	"github.com/BruksfildServices01/prestine-booking/internal/models"
)

func NewDB(cfg *config.Config, log *logrus.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Fatal("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.BookingEvent{},
	); err != nil {
		log.WithError(err).Fatal("failed to migrate")
	}

	ensureNoOverlap(db, log)

	return db
}

// ensureNoOverlap adds a store-level guard against overlapping confirmed
// stays of one apartment. Requires btree_gist; without it the advisory
// lock in the repository is the only guard.
func ensureNoOverlap(db *gorm.DB, log *logrus.Logger) {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
		`DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_overlap'
			) THEN
				ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
				EXCLUDE USING gist (
					apartment_id WITH =,
					daterange(checkin_date, checkout_date, '[)') WITH &&
				) WHERE (status = 'booking_successful');
			END IF;
		END $$`,
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			log.WithError(err).Warn("overlap constraint not installed")
			return
		}
	}
}
