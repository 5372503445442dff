package migrations

import (
	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260301000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260301000001_create_products_table", &CreateProductsTable{})
	migration.Register("20260301000002_create_transactions_tables", &CreateTransactionsTables{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0003: transactions + items --------

type CreateTransactionsTables struct{}

func (m *CreateTransactionsTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Transaction{}, &models.TransactionItem{})
}

func (m *CreateTransactionsTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("transaction_items", "transactions")
}
