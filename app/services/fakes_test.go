package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/pkg/orm"
)

// memProductStore is an in-memory ProductStore for service tests.
type memProductStore struct {
	products map[uint]models.Product
	nextID   uint
}

func newMemProductStore(products ...models.Product) *memProductStore {
	s := &memProductStore{products: map[uint]models.Product{}, nextID: 1}
	for _, p := range products {
		if p.ID == 0 {
			p.ID = s.nextID
		}
		s.products[p.ID] = p
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

func (s *memProductStore) All() ([]models.Product, error) {
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *memProductStore) FindByID(id uint) (models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return models.Product{}, &models.NotFoundError{Entity: "product", ID: id}
	}
	return p, nil
}

func (s *memProductStore) FindByName(name string) (models.Product, error) {
	for _, p := range s.products {
		if strings.EqualFold(strings.TrimSpace(name), p.Name) {
			return p, nil
		}
	}
	return models.Product{}, gorm.ErrRecordNotFound
}

func (s *memProductStore) Create(p *models.Product) error {
	p.ID = s.nextID
	s.nextID++
	s.products[p.ID] = *p
	return nil
}

func (s *memProductStore) Update(p *models.Product) error {
	s.products[p.ID] = *p
	return nil
}

func (s *memProductStore) Delete(id uint) error {
	delete(s.products, id)
	return nil
}

func (s *memProductStore) InvalidateCache() {}

func (s *memProductStore) LowStock(threshold int) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.Stock < threshold {
			out = append(out, p)
		}
	}
	return out, nil
}

// memTransactionStore is an in-memory transaction log backed by a
// memProductStore so Commit can exercise the stock rules.
type memTransactionStore struct {
	products *memProductStore
	log      []models.Transaction
	failWith error
}

func (s *memTransactionStore) Commit(trx *models.Transaction) error {
	if s.failWith != nil {
		return s.failWith
	}
	for _, item := range trx.Items {
		p, err := s.products.FindByID(item.ProductID)
		if err != nil {
			return err
		}
		if p.Stock < item.Quantity {
			return &models.InsufficientStockError{
				Product:   p.Name,
				Requested: item.Quantity,
				Available: p.Stock,
			}
		}
	}
	for _, item := range trx.Items {
		p := s.products.products[item.ProductID]
		p.Stock -= item.Quantity
		s.products.products[item.ProductID] = p
	}
	trx.ID = uint(len(s.log) + 1)
	s.log = append(s.log, *trx)
	return nil
}

func (s *memTransactionStore) All(page, limit int) ([]models.Transaction, orm.Pagination, error) {
	return s.log, orm.Pagination{Page: page, Limit: limit, Total: int64(len(s.log))}, nil
}

func (s *memTransactionStore) ByUser(userID uint, page, limit int) ([]models.Transaction, orm.Pagination, error) {
	var out []models.Transaction
	for _, t := range s.log {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, orm.Pagination{Page: page, Limit: limit, Total: int64(len(out))}, nil
}

func (s *memTransactionStore) Since(from time.Time) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, t := range s.log {
		if !t.CreatedAt.Before(from) {
			out = append(out, t)
		}
	}
	return out, nil
}
