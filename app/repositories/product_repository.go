package repositories

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/pkg/cache"
	"github.com/dpramana/apotek/pkg/orm"
)

const productListCacheKey = "products:all"

// ProductRepository handles database operations for the product catalog.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// All returns the full catalog ordered by name, served from cache when
// warm.
func (r *ProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).Order("name asc").
		Cache(productListCacheKey, 5*time.Minute, &products)
	return products, err
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return product, &models.NotFoundError{Entity: "product", ID: id}
	}
	return product, err
}

// FindByName looks up a product by name ignoring letter case. Returns
// gorm.ErrRecordNotFound when no product matches.
func (r *ProductRepository) FindByName(name string) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&product)
	return product, err
}

// Create persists a new product record.
func (r *ProductRepository) Create(product *models.Product) error {
	return orm.DB().Create(product)
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	return orm.DB().Save(product)
}

// Delete removes a product from the catalog.
func (r *ProductRepository) Delete(id uint) error {
	return orm.DB().Delete(&models.Product{Model: gorm.Model{ID: id}})
}

// InvalidateCache drops the cached catalog listing. Called after any
// catalog write and after a committed sale changes stock levels.
func (r *ProductRepository) InvalidateCache() {
	_ = cache.Forget(productListCacheKey)
}

// LowStock returns products with stock strictly below the threshold,
// lowest first.
func (r *ProductRepository) LowStock(threshold int) ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).
		Where("stock < ?", threshold).
		Order("stock asc").
		Get(&products)
	return products, err
}
