package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpramana/apotek/app/models"
)

func TestCatalogCreate(t *testing.T) {
	svc := NewCatalogService(newMemProductStore())

	p, err := svc.Create(ProductInput{
		Name:     "  Ibuprofen 400mg ",
		Category: "Obat Bebas",
		Price:    price(8000),
		Stock:    40,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ibuprofen 400mg", p.Name, "name is trimmed")
	assert.NotZero(t, p.ID)
}

func TestCatalogRejectsDuplicateNameIgnoringCase(t *testing.T) {
	svc := NewCatalogService(testCatalog())

	for _, name := range []string{
		"Paracetamol 500mg",
		"PARACETAMOL 500MG",
		"paracetamol 500mg",
		"  Paracetamol 500mg  ",
	} {
		_, err := svc.Create(ProductInput{Name: name, Category: "Obat Bebas", Price: price(100), Stock: 5})
		var dup *models.DuplicateNameError
		assert.ErrorAs(t, err, &dup, "name %q must collide", name)
	}
}

func TestCatalogPriceBounds(t *testing.T) {
	svc := NewCatalogService(newMemProductStore())

	_, err := svc.Create(ProductInput{Name: "Ibuprofen 400mg", Category: "Obat Bebas", Price: price(-10), Stock: 5})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	// zero is a legal price
	p, err := svc.Create(ProductInput{Name: "Ibuprofen 400mg", Category: "Obat Bebas", Price: price(0), Stock: 5})
	require.NoError(t, err)
	assert.True(t, p.Price.IsZero())
}

func TestCatalogRejectsStockOfOne(t *testing.T) {
	store := testCatalog()
	svc := NewCatalogService(store)

	_, err := svc.Create(ProductInput{Name: "Ibuprofen 400mg", Category: "Obat Bebas", Price: price(8000), Stock: 1})
	var bad *models.InvalidStockValueError
	require.ErrorAs(t, err, &bad)

	// same rule on update
	_, err = svc.Update(1, ProductInput{Name: "Paracetamol 500mg", Category: "Obat Bebas", Price: price(5000), Stock: 1})
	require.ErrorAs(t, err, &bad)

	// zero and two are both fine
	_, err = svc.Update(1, ProductInput{Name: "Paracetamol 500mg", Category: "Obat Bebas", Price: price(5000), Stock: 0})
	assert.NoError(t, err)
	_, err = svc.Update(1, ProductInput{Name: "Paracetamol 500mg", Category: "Obat Bebas", Price: price(5000), Stock: 2})
	assert.NoError(t, err)
}

func TestCatalogUpdateKeepsOwnName(t *testing.T) {
	svc := NewCatalogService(testCatalog())

	// renaming to its own name (any case) is not a collision
	p, err := svc.Update(1, ProductInput{Name: "PARACETAMOL 500mg", Category: "Obat Bebas", Price: price(5500), Stock: 90})
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(price(5500)))

	// renaming onto another product is
	_, err = svc.Update(1, ProductInput{Name: "Amoxicillin 500mg", Category: "Obat Bebas", Price: price(5500), Stock: 90})
	var dup *models.DuplicateNameError
	assert.ErrorAs(t, err, &dup)
}

func TestCatalogUpdateMissingProduct(t *testing.T) {
	svc := NewCatalogService(testCatalog())

	_, err := svc.Update(99, ProductInput{Name: "Anything", Category: "X", Price: price(1), Stock: 0})
	assert.True(t, models.IsNotFound(err))
}

func TestCatalogRemove(t *testing.T) {
	store := testCatalog()
	svc := NewCatalogService(store)

	require.NoError(t, svc.Remove(1))
	_, err := svc.Find(1)
	assert.True(t, models.IsNotFound(err))

	assert.True(t, models.IsNotFound(svc.Remove(99)))
}
