package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/pkg/event"
)

func checkoutFixture(t *testing.T) (*CartManager, *memTransactionStore, *CheckoutService) {
	t.Helper()
	catalog := testCatalog()
	carts := NewCartManager(catalog)
	store := &memTransactionStore{products: catalog}
	svc := NewCheckoutService(carts, store)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }
	svc.newCode = func(time.Time) string { return "TRX-TEST-0001" }
	return carts, store, svc
}

func fillCart(t *testing.T, carts *CartManager, userID uint) {
	t.Helper()
	for _, add := range []struct {
		productID uint
		qty       int
	}{{1, 2}, {2, 1}, {4, 10}} {
		_, err := carts.AddItem(userID, add.productID, add.qty)
		require.NoError(t, err)
	}
}

func TestCheckoutRejectsTooFewProducts(t *testing.T) {
	carts, store, svc := checkoutFixture(t)

	_, err := carts.AddItem(1, 1, 5)
	require.NoError(t, err)
	_, err = carts.AddItem(1, 2, 5)
	require.NoError(t, err)

	_, err = svc.Checkout(1, "Budi Kasir")
	var lines *models.InsufficientLineItemsError
	require.ErrorAs(t, err, &lines)
	assert.Equal(t, 2, lines.Got)
	assert.Equal(t, 3, lines.Min)

	assert.Empty(t, store.log, "nothing may be written on a rejected checkout")
	assert.Len(t, carts.Get(1).Lines, 2, "cart survives a rejected checkout")
}

func TestCheckoutCommits(t *testing.T) {
	carts, store, svc := checkoutFixture(t)
	fillCart(t, carts, 1) // 2*5000 + 12000 + 10*1500 = 37000

	trx, err := svc.Checkout(1, "Budi Kasir")
	require.NoError(t, err)

	assert.Equal(t, "TRX-TEST-0001", trx.Code)
	assert.Equal(t, uint(1), trx.UserID)
	assert.Equal(t, "Budi Kasir", trx.Kasir)
	assert.True(t, trx.Subtotal.Equal(price(37000)))
	assert.True(t, trx.Discount.IsZero())
	assert.True(t, trx.Total.Equal(price(37000)))
	require.Len(t, trx.Items, 3)

	// stock decremented
	p, err := store.products.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, 98, p.Stock)

	// cart emptied
	assert.Empty(t, carts.Get(1).Lines)

	// appended to the log
	require.Len(t, store.log, 1)
	assert.Equal(t, "TRX-TEST-0001", store.log[0].Code)
}

func TestCheckoutAppliesDiscount(t *testing.T) {
	carts, store, svc := checkoutFixture(t)

	// 4*25000 + 2*12000 + 1*5000 = 129000
	for _, add := range []struct {
		productID uint
		qty       int
	}{{3, 4}, {2, 2}, {1, 1}} {
		_, err := carts.AddItem(1, add.productID, add.qty)
		require.NoError(t, err)
	}

	trx, err := svc.Checkout(1, "Budi Kasir")
	require.NoError(t, err)

	assert.True(t, trx.Subtotal.Equal(price(129000)))
	assert.True(t, trx.Discount.Equal(price(12900)))
	assert.True(t, trx.Total.Equal(price(116100)))
	require.Len(t, store.log, 1)
}

func TestCheckoutAllOrNothingOnStockRace(t *testing.T) {
	carts, store, svc := checkoutFixture(t)
	fillCart(t, carts, 1)

	// stock changed underneath the cart after the lines were added
	p := store.products.products[4]
	p.Stock = 3
	store.products.products[4] = p

	_, err := svc.Checkout(1, "Budi Kasir")
	var ins *models.InsufficientStockError
	require.ErrorAs(t, err, &ins)
	assert.Equal(t, "Vitamin C 1000mg", ins.Product)

	assert.Empty(t, store.log, "failed checkout must not append to the log")
	assert.Equal(t, 100, store.products.products[1].Stock, "no stock effect on failure")
	assert.Len(t, carts.Get(1).Lines, 3, "cart survives a failed checkout")
}

func TestCheckoutFiresCompletedEvent(t *testing.T) {
	t.Cleanup(event.Flush)

	carts, _, svc := checkoutFixture(t)
	fillCart(t, carts, 1)

	var got *models.Transaction
	event.Listen(EventTransactionCompleted, func(payload interface{}) {
		got = payload.(*models.Transaction)
	})

	trx, err := svc.Checkout(1, "Budi Kasir")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, trx.Code, got.Code)
}
