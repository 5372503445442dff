package controllers

import (
	"github.com/dpramana/apotek/app/services"
	"github.com/dpramana/apotek/pkg/ctx"
)

type ProductController struct {
	service *services.CatalogService
}

func NewProductController(service *services.CatalogService) *ProductController {
	return &ProductController{service: service}
}

func (ctl *ProductController) Index(c *ctx.Context) {
	products, err := ctl.service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(products)
}

func (ctl *ProductController) Show(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.NotFound()
		return
	}
	product, err := ctl.service.Find(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(product)
}

func (ctl *ProductController) Store(c *ctx.Context) {
	var in services.ProductInput
	if !c.BindJSON(&in) {
		return
	}
	product, err := ctl.service.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(product)
}

func (ctl *ProductController) Update(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.NotFound()
		return
	}
	var in services.ProductInput
	if !c.BindJSON(&in) {
		return
	}
	product, err := ctl.service.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(product)
}

func (ctl *ProductController) Destroy(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.NotFound()
		return
	}
	if err := ctl.service.Remove(id); err != nil {
		respondError(c, err)
		return
	}
	c.Success(map[string]any{"deleted": id})
}
