package database

import (
	"log"

	"inventory-backend/internal/config"
	"inventory-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the Postgres connection, runs migrations and seeds the
// default locations. The handle is returned to the caller instead of
// being kept in a package-level variable; every handler receives it
// explicitly.
func Init(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := SeedDefaultLocations(db, cfg.DefaultLocations); err != nil {
		log.Fatalf("Seeding default locations failed: %v", err)
	}

	log.Println("Database connection established. Migration complete.")
	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Location{},
		&models.Product{},
		&models.ProductMovement{},
	)
}

// SeedDefaultLocations inserts any configured default location that does
// not exist yet. Idempotent: existing rows are left untouched.
func SeedDefaultLocations(db *gorm.DB, names []string) error {
	for _, name := range names {
		var loc models.Location
		if err := db.Where(models.Location{Name: name}).FirstOrCreate(&loc).Error; err != nil {
			return err
		}
	}
	return nil
}
