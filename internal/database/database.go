package database

import (
	"strings"

	"marinahub/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the cgo-free "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	// Anything else is treated as a SQLite file path. The demo data set
	// ships as a local SQLite database.
	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema for every domain model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.MarinaGroup{},
		&domain.Marina{},
		&domain.User{},
		&domain.Owner{},
		&domain.Berth{},
		&domain.Boat{},
		&domain.Contract{},
		&domain.Invoice{},
		&domain.Payment{},
		&domain.Booking{},
		&domain.WorkOrder{},
	)
}
