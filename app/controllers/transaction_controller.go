package controllers

import (
	"github.com/dpramana/apotek/app/services"
	"github.com/dpramana/apotek/pkg/ctx"
	"github.com/dpramana/apotek/pkg/middleware"
	"github.com/dpramana/apotek/pkg/response"
)

type TransactionController struct {
	checkout *services.CheckoutService
	history  *services.TransactionService
}

func NewTransactionController(checkout *services.CheckoutService, history *services.TransactionService) *TransactionController {
	return &TransactionController{checkout: checkout, history: history}
}

// Checkout commits the caller's cart as a transaction.
func (ctl *TransactionController) Checkout(c *ctx.Context) {
	claims, ok := middleware.ClaimsFromCtx(c.Context())
	if !ok {
		c.Unauthorized()
		return
	}

	trx, err := ctl.checkout.Checkout(claims.UserID, claims.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(trx)
}

// Index lists transaction history: the whole log for admins, the
// caller's own sales for a kasir.
func (ctl *TransactionController) Index(c *ctx.Context) {
	claims, ok := middleware.ClaimsFromCtx(c.Context())
	if !ok {
		c.Unauthorized()
		return
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	trxs, pagination, err := ctl.history.History(claims.UserID, claims.Role, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Paginated(c.W, trxs, pagination)
}
