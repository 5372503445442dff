package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/pkg/event"
	"github.com/dpramana/apotek/pkg/metrics"
)

// EventTransactionCompleted is fired with the committed
// *models.Transaction after a successful checkout.
const EventTransactionCompleted = "transaction.completed"

// TransactionCommitter persists a transaction and its stock effects
// atomically.
type TransactionCommitter interface {
	Commit(trx *models.Transaction) error
}

// CheckoutService turns a cart into a committed transaction.
type CheckoutService struct {
	carts *CartManager
	store TransactionCommitter

	// commitMu serialises checkouts so two carts draining the same
	// product cannot interleave between validation and commit.
	commitMu sync.Mutex

	now     func() time.Time
	newCode func(t time.Time) string
}

func NewCheckoutService(carts *CartManager, store TransactionCommitter) *CheckoutService {
	return &CheckoutService{
		carts:   carts,
		store:   store,
		now:     time.Now,
		newCode: defaultTransactionCode,
	}
}

func defaultTransactionCode(t time.Time) string {
	return fmt.Sprintf("TRX-%s-%04d", t.Format("20060102150405"), t.Nanosecond()%10000)
}

// Checkout validates and commits the user's cart. The cart must hold
// at least three distinct products; totals are recomputed from the
// cart lines, never trusted from the client. On success the cart is
// emptied, the completed event fires, and business counters tick. On
// any failure the catalog and the log are untouched and the cart
// survives so the kasir can fix it and retry.
func (s *CheckoutService) Checkout(userID uint, kasirName string) (*models.Transaction, error) {
	cart := s.carts.Get(userID)

	if len(cart.Lines) < MinDistinctProducts {
		metrics.TransactionsTotal.WithLabelValues("rejected").Inc()
		return nil, &models.InsufficientLineItemsError{
			Got: len(cart.Lines),
			Min: MinDistinctProducts,
		}
	}

	now := s.now()
	trx := &models.Transaction{
		Code:     s.newCode(now),
		UserID:   userID,
		Kasir:    kasirName,
		Subtotal: cart.Subtotal,
		Discount: cart.Discount,
		Total:    cart.Total,
	}
	for _, line := range cart.Lines {
		trx.Items = append(trx.Items, models.TransactionItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			LineTotal:   line.LineTotal,
		})
	}

	s.commitMu.Lock()
	err := s.store.Commit(trx)
	s.commitMu.Unlock()
	if err != nil {
		if models.IsDomainViolation(err) {
			metrics.TransactionsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.TransactionsTotal.WithLabelValues("failed").Inc()
		}
		return nil, err
	}

	s.carts.Clear(userID)

	metrics.TransactionsTotal.WithLabelValues("committed").Inc()
	total, _ := trx.Total.Float64()
	metrics.SalesAmount.Add(total)
	for _, item := range trx.Items {
		metrics.ItemsSold.Add(float64(item.Quantity))
	}
	if trx.Discount.IsPositive() {
		metrics.DiscountsGranted.Inc()
	}

	event.Fire(EventTransactionCompleted, trx)

	return trx, nil
}
