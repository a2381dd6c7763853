package database_test

import (
	"testing"

	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeedDefaultLocationsIdempotent(t *testing.T) {
	db := newTestDB(t)
	names := []string{"Chennai", "Coimbatore", "Madurai"}

	require.NoError(t, database.SeedDefaultLocations(db, names))
	require.NoError(t, database.SeedDefaultLocations(db, names))

	var total int64
	require.NoError(t, db.Model(&models.Location{}).Count(&total).Error)
	require.EqualValues(t, len(names), total)

	for _, name := range names {
		var count int64
		require.NoError(t, db.Model(&models.Location{}).Where("name = ?", name).Count(&count).Error)
		require.EqualValues(t, 1, count, "expected exactly one row for %q", name)
	}
}

func TestSeedDefaultLocationsKeepsExistingRows(t *testing.T) {
	db := newTestDB(t)

	existing := models.Location{Name: "Chennai"}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, database.SeedDefaultLocations(db, []string{"Chennai", "Salem"}))

	var chennai models.Location
	require.NoError(t, db.Where("name = ?", "Chennai").First(&chennai).Error)
	require.Equal(t, existing.ID, chennai.ID, "seeding must not replace an existing row")

	var total int64
	require.NoError(t, db.Model(&models.Location{}).Count(&total).Error)
	require.EqualValues(t, 2, total)
}
