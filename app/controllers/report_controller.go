package controllers

import (
	"github.com/dpramana/apotek/app/services"
	"github.com/dpramana/apotek/pkg/ctx"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

func (ctl *ReportController) Summary(c *ctx.Context) {
	summary, err := ctl.service.Summary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(summary)
}

func (ctl *ReportController) TopProducts(c *ctx.Context) {
	limit := c.QueryInt("limit", 5)
	top, err := ctl.service.TopProducts(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(top)
}

func (ctl *ReportController) DailySales(c *ctx.Context) {
	days := c.QueryInt("days", 7)
	if days < 1 || days > 90 {
		days = 7
	}
	report, err := ctl.service.DailySalesReport(days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(report)
}

func (ctl *ReportController) LowStock(c *ctx.Context) {
	low, err := ctl.service.LowStock()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(low)
}
