package handler

import (
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Inventory    *InventoryHandler
	Transaction  *TransactionHandler
	Distribution *DistributionHandler
	Restock      *RestockHandler
	Dashboard    *DashboardHandler
}

// SetupRoutes mounts the REST API under /api.
func SetupRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api")

	api.Get("/health", Health)

	api.Get("/products", h.Inventory.GetProducts)

	api.Get("/dashboard", h.Dashboard.GetDashboard)
	api.Get("/laporan", h.Dashboard.GetReport)

	api.Get("/distribusi", h.Distribution.GetDistributions)
	api.Post("/distribusi", h.Distribution.CreateDistribution)

	pos := api.Group("/pos")
	pos.Get("/transaksi", h.Transaction.GetTransactions)
	pos.Get("/transaksi/:id", h.Transaction.GetTransaction)
	pos.Post("/transaksi", h.Transaction.CreateTransaction)

	api.Get("/requests", h.Restock.GetRequests)
	api.Post("/requests", h.Restock.CreateRequest)
}
