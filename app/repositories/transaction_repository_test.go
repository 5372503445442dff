package repositories

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/pkg/database"
)

// openTestDB points the package-level connection at a throwaway sqlite
// file so the repositories run against a real database.
func openTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "pos.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{},
		&models.Transaction{}, &models.TransactionItem{},
	))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
}

func seedProducts(t *testing.T, products ...models.Product) {
	t.Helper()
	for i := range products {
		require.NoError(t, database.DB.Create(&products[i]).Error)
	}
}

func stockOf(t *testing.T, id uint) int {
	t.Helper()
	var p models.Product
	require.NoError(t, database.DB.First(&p, id).Error)
	return p.Stock
}

func saleTransaction(items ...models.TransactionItem) *models.Transaction {
	return &models.Transaction{
		Code:     "TRX-20260314-0001",
		UserID:   2,
		Kasir:    "Budi Kasir",
		Subtotal: decimal.NewFromInt(10000),
		Discount: decimal.Zero,
		Total:    decimal.NewFromInt(10000),
		Items:    items,
	}
}

func saleItem(productID uint, qty int) models.TransactionItem {
	return models.TransactionItem{
		ProductID:   productID,
		ProductName: "snapshot",
		UnitPrice:   decimal.NewFromInt(1000),
		Quantity:    qty,
		LineTotal:   decimal.NewFromInt(int64(qty) * 1000),
	}
}

func TestCommitDecrementsExactlyPerLine(t *testing.T) {
	openTestDB(t)
	seedProducts(t,
		models.Product{Name: "A", Category: "Obat Bebas", Price: decimal.NewFromInt(5000), Stock: 10},
		models.Product{Name: "B", Category: "Obat Bebas", Price: decimal.NewFromInt(3000), Stock: 10},
		models.Product{Name: "C", Category: "Obat Bebas", Price: decimal.NewFromInt(2000), Stock: 2},
	)
	repo := NewTransactionRepository()

	trx := saleTransaction(saleItem(1, 1), saleItem(2, 1), saleItem(3, 2))
	require.NoError(t, repo.Commit(trx))

	assert.Equal(t, 9, stockOf(t, 1))
	assert.Equal(t, 9, stockOf(t, 2))
	assert.Equal(t, 0, stockOf(t, 3))

	var stored models.Transaction
	require.NoError(t, database.DB.Preload("Items").First(&stored, "code = ?", trx.Code).Error)
	assert.Equal(t, "Budi Kasir", stored.Kasir)
	require.Len(t, stored.Items, 3)
	assert.Equal(t, 2, stored.Items[2].Quantity)
}

func TestCommitAllOrNothingOnInsufficientStock(t *testing.T) {
	openTestDB(t)
	seedProducts(t,
		models.Product{Name: "A", Category: "Obat Bebas", Price: decimal.NewFromInt(5000), Stock: 10},
		models.Product{Name: "B", Category: "Obat Bebas", Price: decimal.NewFromInt(3000), Stock: 10},
		models.Product{Name: "C", Category: "Obat Bebas", Price: decimal.NewFromInt(2000), Stock: 2},
	)
	repo := NewTransactionRepository()

	// third line wants more C than exists; the first two lines must not
	// leave any trace either
	err := repo.Commit(saleTransaction(saleItem(1, 1), saleItem(2, 1), saleItem(3, 3)))
	var ins *models.InsufficientStockError
	require.ErrorAs(t, err, &ins)
	assert.Equal(t, "C", ins.Product)
	assert.Equal(t, 3, ins.Requested)
	assert.Equal(t, 2, ins.Available)

	assert.Equal(t, 10, stockOf(t, 1))
	assert.Equal(t, 10, stockOf(t, 2))
	assert.Equal(t, 2, stockOf(t, 3))

	var trxCount, itemCount int64
	require.NoError(t, database.DB.Model(&models.Transaction{}).Count(&trxCount).Error)
	require.NoError(t, database.DB.Model(&models.TransactionItem{}).Count(&itemCount).Error)
	assert.Zero(t, trxCount, "failed commit must not append to the log")
	assert.Zero(t, itemCount)
}

func TestCommitUnknownProduct(t *testing.T) {
	openTestDB(t)
	seedProducts(t,
		models.Product{Name: "A", Category: "Obat Bebas", Price: decimal.NewFromInt(5000), Stock: 10},
	)
	repo := NewTransactionRepository()

	err := repo.Commit(saleTransaction(saleItem(1, 1), saleItem(99, 1)))
	assert.True(t, models.IsNotFound(err))
	assert.Equal(t, 10, stockOf(t, 1))
}
