package controllers

import (
	"github.com/dpramana/apotek/app/services"
	"github.com/dpramana/apotek/pkg/ctx"
	"github.com/dpramana/apotek/pkg/middleware"
)

type CartController struct {
	carts *services.CartManager
}

func NewCartController(carts *services.CartManager) *CartController {
	return &CartController{carts: carts}
}

type addItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gte=1"`
}

func (ctl *CartController) Show(c *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(c.Context())
	if !ok {
		c.Unauthorized()
		return
	}
	c.Success(ctl.carts.Get(userID))
}

func (ctl *CartController) AddItem(c *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(c.Context())
	if !ok {
		c.Unauthorized()
		return
	}

	var body addItemRequest
	if !c.BindJSON(&body) {
		return
	}

	cart, err := ctl.carts.AddItem(userID, body.ProductID, body.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(cart)
}

func (ctl *CartController) RemoveLine(c *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(c.Context())
	if !ok {
		c.Unauthorized()
		return
	}

	cart, err := ctl.carts.RemoveLine(userID, c.Param("lineId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(cart)
}

func (ctl *CartController) Clear(c *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(c.Context())
	if !ok {
		c.Unauthorized()
		return
	}
	ctl.carts.Clear(userID)
	c.Success(ctl.carts.Get(userID))
}
