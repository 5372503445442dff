package seeders

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/pkg/auth"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))
	return db
}

func TestSeedDefaultOperators(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedUsers(db))

	var admin, kasir models.User
	require.NoError(t, db.Where("email = ?", "admin@apotek.com").First(&admin).Error)
	require.NoError(t, db.Where("email = ?", "kasir@apotek.com").First(&kasir).Error)

	assert.Equal(t, "Administrator", admin.Name)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, "Budi Kasir", kasir.Name)
	assert.Equal(t, models.RoleKasir, kasir.Role)
	assert.True(t, auth.CheckPassword(kasir.Password, "password"))
}

func TestSeedersAreIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedUsers(db))
	require.NoError(t, SeedProducts(db))
	require.NoError(t, SeedUsers(db))
	require.NoError(t, SeedProducts(db))

	var users, products int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.EqualValues(t, 2, users)
	assert.EqualValues(t, 5, products)
}
