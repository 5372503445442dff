package services

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dpramana/apotek/app/models"
)

// ErrInvalidQuantity rejects non-positive quantities before any stock
// check runs.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// ProductFinder is the slice of the catalog the cart needs: enough to
// resolve a product and check its stock.
type ProductFinder interface {
	FindByID(id uint) (models.Product, error)
}

// CartLine is one product entry in a cart. The name and unit price are
// snapshots taken when the line was added.
type CartLine struct {
	ID          string          `json:"id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Cart is a user's in-progress sale.
type Cart struct {
	Lines []CartLine `json:"lines"`
	Totals
}

// CartManager keeps one cart per user in memory. Carts are scratch
// state: they live only until checkout or process restart, so nothing
// is persisted.
type CartManager struct {
	mu       sync.Mutex
	carts    map[uint][]CartLine
	products ProductFinder
	newID    func() string
}

func NewCartManager(products ProductFinder) *CartManager {
	return &CartManager{
		carts:    map[uint][]CartLine{},
		products: products,
		newID:    func() string { return uuid.NewString() },
	}
}

// Get returns the user's cart with totals computed.
func (m *CartManager) Get(userID uint) Cart {
	m.mu.Lock()
	lines := make([]CartLine, len(m.carts[userID]))
	copy(lines, m.carts[userID])
	m.mu.Unlock()
	return priceCart(lines)
}

// AddItem puts quantity units of a product into the user's cart. If a
// line for the product already exists its quantity grows instead of a
// second line appearing. The combined quantity may not exceed the
// product's current stock, and out-of-stock products are rejected
// outright.
func (m *CartManager) AddItem(userID, productID uint, quantity int) (Cart, error) {
	if quantity < 1 {
		return Cart{}, ErrInvalidQuantity
	}
	product, err := m.products.FindByID(productID)
	if err != nil {
		return Cart{}, err
	}
	if product.Stock == 0 {
		return Cart{}, &models.OutOfStockError{Product: product.Name}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	lines := m.carts[userID]
	existing := -1
	inCart := 0
	for i, l := range lines {
		if l.ProductID == productID {
			existing = i
			inCart = l.Quantity
		}
	}

	if inCart+quantity > product.Stock {
		return Cart{}, &models.InsufficientStockError{
			Product:   product.Name,
			Requested: inCart + quantity,
			Available: product.Stock,
		}
	}

	if existing >= 0 {
		lines[existing].Quantity += quantity
		lines[existing].LineTotal = lineTotal(lines[existing])
	} else {
		line := CartLine{
			ID:          m.newID(),
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    quantity,
		}
		line.LineTotal = lineTotal(line)
		lines = append(lines, line)
	}
	m.carts[userID] = lines

	snapshot := make([]CartLine, len(lines))
	copy(snapshot, lines)
	return priceCart(snapshot), nil
}

// RemoveLine deletes one line from the user's cart by its line id.
func (m *CartManager) RemoveLine(userID uint, lineID string) (Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := m.carts[userID]
	for i, l := range lines {
		if l.ID == lineID {
			lines = append(lines[:i], lines[i+1:]...)
			m.carts[userID] = lines
			snapshot := make([]CartLine, len(lines))
			copy(snapshot, lines)
			return priceCart(snapshot), nil
		}
	}
	return Cart{}, &models.NotFoundError{Entity: "cart line", Key: lineID}
}

// Clear empties the user's cart.
func (m *CartManager) Clear(userID uint) {
	m.mu.Lock()
	delete(m.carts, userID)
	m.mu.Unlock()
}

func lineTotal(l CartLine) decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))).Round(2)
}

func priceCart(lines []CartLine) Cart {
	priceLines := make([]PriceLine, len(lines))
	for i, l := range lines {
		priceLines[i] = PriceLine{UnitPrice: l.UnitPrice, Quantity: l.Quantity}
	}
	return Cart{Lines: lines, Totals: ComputeTotals(priceLines)}
}
