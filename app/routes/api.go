package routes

import (
	"github.com/dpramana/apotek/app/controllers"
	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/app/repositories"
	"github.com/dpramana/apotek/app/services"
	"github.com/dpramana/apotek/pkg/ctx"
	"github.com/dpramana/apotek/pkg/event"
	"github.com/dpramana/apotek/pkg/logger"
	"github.com/dpramana/apotek/pkg/middleware"
	"github.com/dpramana/apotek/pkg/rbac"
	"github.com/dpramana/apotek/pkg/router"
)

// RegisterAPI wires repositories, services and controllers and mounts
// every route under /api.
func RegisterAPI(r *router.Router) {
	productRepo := repositories.NewProductRepository()
	userRepo := repositories.NewUserRepository()
	transactionRepo := repositories.NewTransactionRepository()

	carts := services.NewCartManager(productRepo)

	authController := controllers.NewAuthController(services.NewAuthService(userRepo))
	productController := controllers.NewProductController(services.NewCatalogService(productRepo))
	cartController := controllers.NewCartController(carts)
	transactionController := controllers.NewTransactionController(
		services.NewCheckoutService(carts, transactionRepo),
		services.NewTransactionService(transactionRepo),
	)
	reportController := controllers.NewReportController(
		services.NewReportService(transactionRepo, productRepo),
	)

	// a committed sale changed stock levels, so the cached catalog
	// listing is stale
	event.Listen(services.EventTransactionCompleted, func(payload interface{}) {
		productRepo.InvalidateCache()
		if trx, ok := payload.(*models.Transaction); ok {
			logger.Info("transaction committed",
				"code", trx.Code, "kasir", trx.Kasir, "total", trx.Total)
		}
	})

	api := r.Group("/api")
	api.Post("/login", "auth.login", ctx.Wrap(authController.Login))

	authed := api.Group("", middleware.Auth)

	authed.Get("/products", "products.index", ctx.Wrap(productController.Index))
	authed.Get("/products/{id}", "products.show", ctx.Wrap(productController.Show))

	admin := authed.Group("", rbac.HasRole(models.RoleAdmin))
	admin.Post("/products", "products.store", ctx.Wrap(productController.Store))
	admin.Put("/products/{id}", "products.update", ctx.Wrap(productController.Update))
	admin.Delete("/products/{id}", "products.destroy", ctx.Wrap(productController.Destroy))

	authed.Get("/cart", "cart.show", ctx.Wrap(cartController.Show))
	authed.Post("/cart/items", "cart.add", ctx.Wrap(cartController.AddItem))
	authed.Delete("/cart/items/{lineId}", "cart.remove", ctx.Wrap(cartController.RemoveLine))
	authed.Delete("/cart", "cart.clear", ctx.Wrap(cartController.Clear))

	authed.Post("/checkout", "checkout", ctx.Wrap(transactionController.Checkout))
	authed.Get("/transactions", "transactions.index", ctx.Wrap(transactionController.Index))

	// dashboard reports are visible to every operator, not only admins
	authed.Get("/reports/summary", "reports.summary", ctx.Wrap(reportController.Summary))
	authed.Get("/reports/top-products", "reports.top", ctx.Wrap(reportController.TopProducts))
	authed.Get("/reports/daily-sales", "reports.daily", ctx.Wrap(reportController.DailySales))
	authed.Get("/reports/low-stock", "reports.lowstock", ctx.Wrap(reportController.LowStock))
}
