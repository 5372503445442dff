package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/pkg/orm"
)

// TransactionRepository handles database operations for the
// append-only transaction log.
type TransactionRepository struct{}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Commit persists the transaction and decrements the stock of every
// product it references, all inside one database transaction. If any
// product has less stock than the line requires, nothing is written
// and an InsufficientStockError is returned.
//
// The stock check runs twice: once up front to fail fast with a clear
// error, and again inside the guarded UPDATE (stock >= qty) so a
// concurrent sale between the check and the write still cannot drive
// stock negative.
func (r *TransactionRepository) Commit(trx *models.Transaction) error {
	return orm.Transaction(func(tx *gorm.DB) error {
		for _, item := range trx.Items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &models.NotFoundError{Entity: "product", ID: item.ProductID}
				}
				return err
			}
			if product.Stock < item.Quantity {
				return &models.InsufficientStockError{
					Product:   product.Name,
					Requested: item.Quantity,
					Available: product.Stock,
				}
			}
		}

		for _, item := range trx.Items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// raced with another sale since the pre-check
				var product models.Product
				if err := tx.First(&product, item.ProductID).Error; err != nil {
					return err
				}
				return &models.InsufficientStockError{
					Product:   product.Name,
					Requested: item.Quantity,
					Available: product.Stock,
				}
			}
		}

		return tx.Create(trx).Error
	})
}

// All returns every transaction with its items, newest first.
func (r *TransactionRepository) All(page, limit int) ([]models.Transaction, orm.Pagination, error) {
	var trxs []models.Transaction
	pagination, err := orm.DB().Model(&models.Transaction{}).
		Preload("Items").
		Order("created_at desc").
		GetWithPagination(&trxs, page, limit)
	return trxs, pagination, err
}

// ByUser returns the transactions rung up by one user, newest first.
func (r *TransactionRepository) ByUser(userID uint, page, limit int) ([]models.Transaction, orm.Pagination, error) {
	var trxs []models.Transaction
	pagination, err := orm.DB().Model(&models.Transaction{}).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		GetWithPagination(&trxs, page, limit)
	return trxs, pagination, err
}

// Since returns every transaction created at or after the given time,
// items preloaded, oldest first. Used by the reporting queries.
func (r *TransactionRepository) Since(from time.Time) ([]models.Transaction, error) {
	var trxs []models.Transaction
	err := orm.DB().Model(&models.Transaction{}).
		Preload("Items").
		Where("created_at >= ?", from).
		Order("created_at asc").
		Get(&trxs)
	return trxs, err
}
