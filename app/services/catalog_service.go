package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dpramana/apotek/app/models"
)

// ErrInvalidPrice rejects catalog writes with a negative price. Zero is
// a legal price (free items, not-yet-priced stock).
var ErrInvalidPrice = errors.New("price must not be negative")

// ProductStore is what the catalog service needs from the product
// repository.
type ProductStore interface {
	All() ([]models.Product, error)
	FindByID(id uint) (models.Product, error)
	FindByName(name string) (models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	InvalidateCache()
	LowStock(threshold int) ([]models.Product, error)
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name     string          `json:"name" validate:"required,max=255"`
	Category string          `json:"category" validate:"required,max=100"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Stock    int             `json:"stock" validate:"gte=0"`
}

// CatalogService manages the product catalog: listing for everyone,
// writes for admins. It owns two rules the storage layer cannot
// express portably: product names are unique ignoring case, and a
// stock of exactly 1 is never accepted.
type CatalogService struct {
	store ProductStore
}

func NewCatalogService(store ProductStore) *CatalogService {
	return &CatalogService{store: store}
}

// List returns the whole catalog.
func (s *CatalogService) List() ([]models.Product, error) {
	return s.store.All()
}

// Find returns one product by id.
func (s *CatalogService) Find(id uint) (models.Product, error) {
	return s.store.FindByID(id)
}

// Create adds a product to the catalog.
func (s *CatalogService) Create(in ProductInput) (models.Product, error) {
	if in.Price.IsNegative() {
		return models.Product{}, ErrInvalidPrice
	}
	if err := s.checkStock(in.Stock); err != nil {
		return models.Product{}, err
	}
	if err := s.checkName(in.Name, 0); err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		Price:    in.Price,
		Stock:    in.Stock,
	}
	if err := s.store.Create(&product); err != nil {
		return models.Product{}, err
	}
	s.store.InvalidateCache()
	return product, nil
}

// Update rewrites a product's fields. The same name and stock rules
// apply as on create, except the product may of course keep its own
// name.
func (s *CatalogService) Update(id uint, in ProductInput) (models.Product, error) {
	product, err := s.store.FindByID(id)
	if err != nil {
		return models.Product{}, err
	}
	if in.Price.IsNegative() {
		return models.Product{}, ErrInvalidPrice
	}
	if err := s.checkStock(in.Stock); err != nil {
		return models.Product{}, err
	}
	if err := s.checkName(in.Name, id); err != nil {
		return models.Product{}, err
	}

	product.Name = strings.TrimSpace(in.Name)
	product.Category = strings.TrimSpace(in.Category)
	product.Price = in.Price
	product.Stock = in.Stock
	if err := s.store.Update(&product); err != nil {
		return models.Product{}, err
	}
	s.store.InvalidateCache()
	return product, nil
}

// Remove deletes a product from the catalog. Historic transactions
// keep their own name and price snapshots, so nothing else changes.
func (s *CatalogService) Remove(id uint) error {
	if _, err := s.store.FindByID(id); err != nil {
		return err
	}
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.store.InvalidateCache()
	return nil
}

func (s *CatalogService) checkStock(stock int) error {
	if stock == 1 {
		return &models.InvalidStockValueError{Stock: stock}
	}
	return nil
}

// checkName rejects a name already used by a different product,
// ignoring letter case. selfID is the product being updated, or 0 on
// create.
func (s *CatalogService) checkName(name string, selfID uint) error {
	existing, err := s.store.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return &models.DuplicateNameError{Name: strings.TrimSpace(name)}
	}
	return nil
}
