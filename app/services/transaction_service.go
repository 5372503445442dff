package services

import (
	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/pkg/orm"
)

// TransactionLister is the paged read side of the transaction log.
type TransactionLister interface {
	All(page, limit int) ([]models.Transaction, orm.Pagination, error)
	ByUser(userID uint, page, limit int) ([]models.Transaction, orm.Pagination, error)
}

// TransactionService serves the history view. Admins see the whole
// log; a kasir only sees the sales they rang up themselves.
type TransactionService struct {
	store TransactionLister
}

func NewTransactionService(store TransactionLister) *TransactionService {
	return &TransactionService{store: store}
}

// History returns the transactions visible to the given user.
func (s *TransactionService) History(userID uint, role string, page, limit int) ([]models.Transaction, orm.Pagination, error) {
	if role == models.RoleAdmin {
		return s.store.All(page, limit)
	}
	return s.store.ByUser(userID, page, limit)
}
